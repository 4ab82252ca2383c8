package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// Minimal server-rendered pages. The surface is redirects and small forms;
// a template engine dependency would be more machinery than markup.
var views = template.Must(template.New("views").Parse(`
{{define "login"}}<!doctype html>
<title>wechat</title>
<h1>Login</h1>
<form method="post" action="/login">
  <input name="username" placeholder="username" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Login</button>
</form>
<p><a href="/register">Register</a></p>
{{end}}

{{define "register"}}<!doctype html>
<title>wechat - register</title>
<h1>Register</h1>
<form method="post" action="/register">
  <input name="username" placeholder="username" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Register</button>
</form>
<p><a href="/">Back to login</a></p>
{{end}}

{{define "users"}}<!doctype html>
<title>wechat - users</title>
<h1>Users</h1>
<ul>
{{range .Users}}  <li><a href="/chat?username={{.Username}}">{{.Username}}</a></li>
{{end}}</ul>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
{{end}}

{{define "chat"}}<!doctype html>
<title>wechat - chat with {{.Target}}</title>
<h1>Chat with {{.Target}}</h1>
<ul>
{{range .Messages}}  <li><b>{{.Sender}}</b>: {{.Body}}</li>
{{end}}</ul>
<form method="post" action="/send">
  <input type="hidden" name="sender" value="{{.CurrentUser}}">
  <input type="hidden" name="receiver" value="{{.Target}}">
  <input name="message" placeholder="message" required>
  <button type="submit">Send</button>
</form>
{{end}}

{{define "adminPanel"}}<!doctype html>
<title>wechat - admin</title>
<h1>Admin panel</h1>
<table>
<tr><th>Username</th><th>Verified</th><th>Admin</th><th></th></tr>
{{range .Users}}<tr>
  <td>{{.Username}}</td><td>{{.IsVerified}}</td><td>{{.IsAdmin}}</td>
  <td><form method="post" action="/admin/verify">
    <input type="hidden" name="username" value="{{.Username}}">
    {{if .IsVerified}}<button name="action" value="unverify">Unverify</button>
    {{else}}<button name="action" value="verify">Verify</button>{{end}}
  </form></td>
</tr>
{{end}}</table>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
{{end}}

{{define "adminMessages"}}<!doctype html>
<title>wechat - audit</title>
<h1>Messages between {{.User1}} and {{.User2}}</h1>
<ul>
{{range .Messages}}  <li><b>{{.Sender}}</b> &rarr; {{.Receiver}}: {{.Body}} <i>{{.Timestamp}}</i></li>
{{end}}</ul>
<p><a href="/admin">Back</a></p>
{{end}}
`))

type usersView struct {
	Users []*domain.User
}

type chatView struct {
	CurrentUser string
	Target      string
	Messages    []*domain.Message
}

type adminMessagesView struct {
	User1    string
	User2    string
	Messages []*domain.Message
}

func render(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
