// Package webadmin provides the browser dashboard.
//
// # Overview
//
// The dashboard is a server-rendered shell around the pages of one route
// tree (see Routes). The same tree feeds the HTTP mux, the sidebar and the
// navbar title, so adding a page is a single entry.
//
// # Session Gate
//
// Every request boots a session gate from the authToken cookie:
//
//   - "/" redirects to the dashboard home or the sign-in page
//   - /admin/* requires a token, otherwise it redirects to sign-in
//   - /auth/* redirects signed-in users to the dashboard home
//
// The token is only checked for presence. The first API call answered with
// 401 ends the session and sends the browser back to sign-in.
//
// # Navigation Shell
//
// Each browser gets a shell ID cookie. Sidebar group expansion is kept in
// memory per shell, starts collapsed, and is dropped on sign-out. Group
// headers post to /admin/nav/toggle; htmx requests get the sidebar fragment
// back, plain form posts are redirected to the page they came from.
//
// # Pages
//
// Pages talk to the REST backend only through the resources services. A
// failed fetch still renders the page, with an empty table and an error toast.
//
// # CSRF Protection
//
// All form submissions require CSRF tokens:
//
//	<input type="hidden" name="csrf_token" value="{{.Shell.CSRFToken}}">
//
// htmx requests send the token in the X-CSRF-Token header instead.
//
// # Usage
//
//	admin, err := webadmin.New(webadmin.Config{APIBaseURL: "http://127.0.0.1:5000"})
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(":3000", admin.Handler())
package webadmin
