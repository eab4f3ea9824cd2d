// ABOUTME: Report pages: bookings, completed tasks and invoices
// ABOUTME: Search and filters come from the query string; ?format=csv exports the filtered rows

package webadmin

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/table"
)

// Rows per page on the report listings.
const (
	bookingsPerPage = 5
	tasksPerPage    = 5
	invoicesPerPage = 3
)

// reportQuery is the search, filter and page state read from the URL.
type reportQuery struct {
	Search   string
	State    string
	City     string
	Locality string
	Status   string
	Page     int
}

func parseReportQuery(q url.Values) reportQuery {
	page, _ := strconv.Atoi(q.Get("page"))
	return reportQuery{
		Search:   q.Get("q"),
		State:    q.Get("state"),
		City:     q.Get("city"),
		Locality: q.Get("locality"),
		Status:   q.Get("status"),
		Page:     page,
	}
}

// values encodes the non-empty search and filter fields.
func (q reportQuery) values() url.Values {
	v := url.Values{}
	for key, val := range map[string]string{
		"q": q.Search, "state": q.State, "city": q.City, "locality": q.Locality, "status": q.Status,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// PageURL returns the listing URL for page n with the current filters.
func (q reportQuery) PageURL(n int) string {
	v := q.values()
	v.Set("page", strconv.Itoa(n))
	return "?" + v.Encode()
}

// ExportURL returns the CSV export URL for the current filters.
func (q reportQuery) ExportURL() string {
	v := q.values()
	v.Set("format", "csv")
	return "?" + v.Encode()
}

// exportFailed sends the browser back to the listing with t instead of an empty file.
func (a *Admin) exportFailed(w http.ResponseWriter, r *http.Request, t *toast) {
	a.setFlash(w, r, t.Level, t.Message)
	http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
}

// filterOptions are the distinct values offered by each filter select.
type filterOptions struct {
	States     []string
	Cities     []string
	Localities []string
	Statuses   []string
}

type bookingsData struct {
	Query   reportQuery
	Options filterOptions
	Page    table.Page[resources.Booking]
}

func filterBookings(items []resources.Booking, q reportQuery) []resources.Booking {
	return table.Filter(items, func(b resources.Booking) bool {
		return table.Contains(b.Task, q.Search) &&
			table.Equal(b.State, q.State) &&
			table.Equal(b.City, q.City) &&
			table.Equal(b.Locality, q.Locality) &&
			table.Equal(b.Status, q.Status)
	})
}

func (a *Admin) handleBookings(w http.ResponseWriter, r *http.Request) {
	q := parseReportQuery(r.URL.Query())

	items, err := a.services(r).Reports.Bookings(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch bookings", err); done {
			return
		}
	}
	filtered := filterBookings(items, q)

	if r.URL.Query().Get("format") == "csv" {
		if t != nil {
			a.exportFailed(w, r, t)
			return
		}
		rows := make([][]string, len(filtered))
		for i, b := range filtered {
			rows[i] = []string{b.ID, b.Task, b.State, b.City, b.Locality, b.Status}
		}
		a.writeCSV(w, "bookings.csv", []string{"ID", "Booking", "State", "City", "Locality", "Status"}, rows)
		return
	}

	a.renderShell(w, r, http.StatusOK, "bookings", bookingsData{
		Query: q,
		Options: filterOptions{
			States:     table.Distinct(items, func(b resources.Booking) string { return b.State }),
			Cities:     table.Distinct(items, func(b resources.Booking) string { return b.City }),
			Localities: table.Distinct(items, func(b resources.Booking) string { return b.Locality }),
			Statuses:   table.Distinct(items, func(b resources.Booking) string { return b.Status }),
		},
		Page: table.Paginate(filtered, q.Page, bookingsPerPage),
	}, t)
}

type tasksData struct {
	Query   reportQuery
	Options filterOptions
	Page    table.Page[resources.Task]
}

func filterTasks(items []resources.Task, q reportQuery) []resources.Task {
	return table.Filter(items, func(t resources.Task) bool {
		return table.Contains(t.Task, q.Search) &&
			table.Equal(t.State, q.State) &&
			table.Equal(t.City, q.City) &&
			table.Equal(t.Locality, q.Locality)
	})
}

func (a *Admin) handleTasks(w http.ResponseWriter, r *http.Request) {
	q := parseReportQuery(r.URL.Query())
	q.Status = ""

	items, err := a.services(r).Reports.Tasks(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch tasks", err); done {
			return
		}
	}
	filtered := filterTasks(items, q)

	if r.URL.Query().Get("format") == "csv" {
		if t != nil {
			a.exportFailed(w, r, t)
			return
		}
		rows := make([][]string, len(filtered))
		for i, task := range filtered {
			completed := ""
			if !task.CompletedAt.IsZero() {
				completed = task.CompletedAt.Format("2006-01-02")
			}
			rows[i] = []string{task.ID, task.Task, task.State, task.City, task.Locality, completed}
		}
		a.writeCSV(w, "tasks.csv", []string{"ID", "Task", "State", "City", "Locality", "Completed"}, rows)
		return
	}

	a.renderShell(w, r, http.StatusOK, "tasks", tasksData{
		Query: q,
		Options: filterOptions{
			States:     table.Distinct(items, func(t resources.Task) string { return t.State }),
			Cities:     table.Distinct(items, func(t resources.Task) string { return t.City }),
			Localities: table.Distinct(items, func(t resources.Task) string { return t.Locality }),
		},
		Page: table.Paginate(filtered, q.Page, tasksPerPage),
	}, t)
}

type invoicesData struct {
	Query    reportQuery
	Statuses []string
	Page     table.Page[resources.Invoice]
}

// filterInvoices searches the customer name or the invoice number.
func filterInvoices(items []resources.Invoice, q reportQuery) []resources.Invoice {
	return table.Filter(items, func(inv resources.Invoice) bool {
		return (table.Contains(inv.Customer, q.Search) || table.Contains(inv.Number, q.Search)) &&
			table.Equal(inv.Status, q.Status)
	})
}

func (a *Admin) handleInvoices(w http.ResponseWriter, r *http.Request) {
	q := parseReportQuery(r.URL.Query())
	q.State, q.City, q.Locality = "", "", ""

	items, err := a.services(r).Reports.Invoices(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch invoices", err); done {
			return
		}
	}
	filtered := filterInvoices(items, q)

	if r.URL.Query().Get("format") == "csv" {
		if t != nil {
			a.exportFailed(w, r, t)
			return
		}
		rows := make([][]string, len(filtered))
		for i, inv := range filtered {
			rows[i] = []string{inv.Number, inv.Customer, inv.Date, inv.DueDate, strconv.FormatInt(inv.Amount, 10), inv.Status}
		}
		a.writeCSV(w, "invoices.csv", []string{"Invoice #", "Customer", "Date", "Due Date", "Amount", "Status"}, rows)
		return
	}

	a.renderShell(w, r, http.StatusOK, "invoices", invoicesData{
		Query:    q,
		Statuses: []string{"Paid", "Pending", "Overdue"},
		Page:     table.Paginate(filtered, q.Page, invoicesPerPage),
	}, t)
}

// writeCSV sends rows as a downloadable CSV file
func (a *Admin) writeCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := table.WriteCSV(w, header, rows); err != nil {
		a.logger.Error("failed to write csv", "file", filename, "error", err)
	}
}
