package java

// Template text for the QuickFIX/J class model. Accessor blocks and
// repeating-unit classes are shared named templates; the unit template
// recurses through "members" for nested groups.
const classTemplates = `
{{- define "fieldAccessor"}}
  public void set(quickfix.field.{{.Name}} value) {
    setField(value);
  }

  public quickfix.field.{{.Name}} get(quickfix.field.{{.Name}} value) throws FieldNotFound {
    getField(value);
    return value;
  }

  public quickfix.field.{{.Name}} get{{.Name}}() throws FieldNotFound {
    return get(new quickfix.field.{{.Name}}());
  }

  public boolean isSet(quickfix.field.{{.Name}} field) {
    return isSetField(field);
  }

  public boolean isSet{{.Name}}() {
    return isSetField({{.ID}});
  }
{{end}}

{{- define "componentAccessor"}}
  public void set({{.Package}}.{{.Name}} component) {
    setComponent(component);
  }

  public {{.Package}}.{{.Name}} get({{.Package}}.{{.Name}} component) throws FieldNotFound {
    getComponent(component);
    return component;
  }

  public {{.Package}}.{{.Name}} get{{.Name}}Component() throws FieldNotFound {
    return get(new {{.Package}}.{{.Name}}());
  }
{{end}}

{{- define "groupUnit"}}
  public static class {{.Name}} extends Group {
    static final long serialVersionUID = 552892318L;

    private static final int[] ORDER = { {{range .Order}}{{.}}, {{end}}0};

    public {{.Name}}() {
      super({{.CounterID}}, {{.FirstFieldID}}, ORDER);
    }
{{template "members" .Members}}  }
{{end}}

{{- define "members"}}
{{- range .}}
{{- if .Field}}{{template "fieldAccessor" .Field}}{{end}}
{{- if .Component}}{{template "componentAccessor" .Component}}{{end}}
{{- if .Group}}{{template "groupUnit" .Group}}{{end}}
{{- end}}
{{- end}}

{{- define "field" -}}
/* Generated Java Source File */
package {{.Package}};

{{if temporal .}}import java.time.LocalDate;
import java.time.LocalTime;
import java.time.LocalDateTime;
{{end}}{{if bigDecimal .}}import java.math.BigDecimal;
{{end}}import quickfix.{{baseClass .}};

public class {{.Name}} extends {{baseClass .}} {
  static final long serialVersionUID = 552892318L;

  public static final int FIELD = {{.ID}};
{{range .Constants}}
  public static final {{constType .}} {{.Name}} = {{constValue .}};
{{end}}
  public {{.Name}}() {
    super({{.ID}});
  }
{{range ctors .}}
  public {{$.Name}}({{.Param}} data) {
    super({{$.ID}}, {{.Expr}});
  }
{{end -}}
}
{{end}}

{{- define "component" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.FieldNotFound;
import quickfix.Group;

public class {{.Name}} extends quickfix.MessageComponent {
  static final long serialVersionUID = 552892318L;

  public static final String MSGTYPE = "";

  private int[] componentFields = { {{range .FieldIDs}}{{.}}, {{end}}};
  protected int[] getFields() { return componentFields; }

  private int[] componentGroups = { };
  protected int[] getGroupFields() { return componentGroups; }

  public {{.Name}}() {
    super();
  }
{{template "members" .Members}}}
{{end}}

{{- define "group" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.FieldNotFound;
import quickfix.Group;

public class {{.Name}} extends quickfix.MessageComponent {
  static final long serialVersionUID = 552892318L;

  public static final String MSGTYPE = "";

  private int[] componentFields = { };
  protected int[] getFields() { return componentFields; }

  private int[] componentGroups = { {{.Counter.ID}}, };
  protected int[] getGroupFields() { return componentGroups; }

  public {{.Name}}() {
    super();
  }
{{template "fieldAccessor" .Counter}}
{{- template "groupUnit" .Unit}}
{{- template "members" .Members}}}
{{end}}

{{- define "message" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.FieldNotFound;
import quickfix.field.*;
import quickfix.Group;

public class {{.Name}} extends Message {
  static final long serialVersionUID = 552892318L;

  public static final String MSGTYPE = "{{.MsgType}}";

  public {{.Name}}() {
    super();
    getHeader().setField(new quickfix.field.MsgType(MSGTYPE));
  }
{{template "members" .Members}}}
{{end}}

{{- define "factory" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.Message;
import quickfix.Group;

public class MessageFactory implements quickfix.MessageFactory {

  public Message create(String beginString, String msgType) {
    switch (msgType) {
{{range .Messages}}    case {{$.Package}}.{{.Name}}.MSGTYPE:
      return new {{$.Package}}.{{.Name}}();
{{end}}    }
    return new {{.Package}}.Message();
  }

  public Group create(String beginString, String msgType, int correspondingFieldID) {
    switch (msgType) {
{{range .Messages}}    case {{$.Package}}.{{.Name}}.MSGTYPE:
      switch (correspondingFieldID) {
{{range .Groups}}      case quickfix.field.{{.CounterName}}.FIELD:
        return new {{.Parent}}.{{.CounterName}}();
{{end}}      }
      break;
{{end}}    }
    return null;
  }
}
{{end}}

{{- define "cracker" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.*;
import quickfix.field.*;

public class MessageCracker {

  public void onMessage(quickfix.Message message, SessionID sessionID) throws FieldNotFound, UnsupportedMessageType, IncorrectTagValue {
    throw new UnsupportedMessageType();
  }
{{range .MessageNames}}
  /**
   * Callback for {{.}} message.
   */
  public void onMessage({{.}} message, SessionID sessionID) throws FieldNotFound, UnsupportedMessageType, IncorrectTagValue {
    throw new UnsupportedMessageType();
  }
{{end}}
  public void crack(quickfix.Message message, SessionID sessionID) throws UnsupportedMessageType, FieldNotFound, IncorrectTagValue {
    {{.CrackMethod}}((Message) message, sessionID);
  }

  public void {{.CrackMethod}}(Message message, SessionID sessionID) throws UnsupportedMessageType, FieldNotFound, IncorrectTagValue {
    String type = message.getHeader().getString(MsgType.FIELD);
    switch (type) {
{{range .MessageNames}}    case {{.}}.MSGTYPE:
      onMessage(({{.}})message, sessionID);
      break;
{{end}}    default:
      onMessage(message, sessionID);
    }
  }
}
{{end}}

{{- define "baseMessage" -}}
/* Generated Java Source File */
package {{.Package}};

import quickfix.field.*;

public class Message extends quickfix.Message {
  static final long serialVersionUID = 552892318L;

  public Message() {
    this(null);
  }

  protected Message(int[] fieldOrder) {
    super(fieldOrder);
    header = new Header(this);
    trailer = new Trailer();
    getHeader().setField(new BeginString("{{.BeginString}}"));
  }

  public static class Header extends quickfix.Message.Header {
    static final long serialVersionUID = 552892318L;

    public Header(Message msg) {
    }
  }
}
{{end}}
`
