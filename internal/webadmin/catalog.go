// ABOUTME: Categories and Community pages with their form actions
// ABOUTME: Categories support search, inline create and edit; community rows can be deleted

package webadmin

import (
	"net/http"
	"strings"

	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/table"
)

const (
	categoriesAddress = "/admin/categories"
	communityAddress  = "/admin/community"
)

type categoryForm struct {
	ID     string
	Form   resources.CategoryForm
	Errors resources.FieldErrors
}

type categoriesData struct {
	Search     string
	Categories []resources.Category
	Statuses   []string
	Form       categoryForm
}

func (a *Admin) handleCategories(w http.ResponseWriter, r *http.Request) {
	a.renderCategories(w, r, http.StatusOK, nil)
}

// renderCategories lists the categories matching ?q. A nil form starts an
// empty create form, or an edit form when ?edit names a category.
func (a *Admin) renderCategories(w http.ResponseWriter, r *http.Request, status int, form *categoryForm) {
	search := r.URL.Query().Get("q")

	all, err := a.services(r).Categories.List(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch categories", err); done {
			return
		}
	}

	if form == nil {
		form = &categoryForm{Form: resources.CategoryForm{Status: "Active"}}
		if id := r.URL.Query().Get("edit"); id != "" {
			for _, c := range all {
				if c.ID == id {
					form = &categoryForm{ID: id, Form: resources.CategoryForm{Name: c.Name, Status: c.Status}}
				}
			}
		}
	}

	a.renderShell(w, r, status, "categories", categoriesData{
		Search: search,
		Categories: table.Filter(all, func(c resources.Category) bool {
			return table.Contains(c.Name, search)
		}),
		Statuses: resources.CategoryStatuses,
		Form:     *form,
	}, t)
}

func (a *Admin) handleCategorySave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	form := resources.CategoryForm{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Status: r.FormValue("status"),
	}
	if form.Status == "" {
		form.Status = "Active"
	}

	if errs := resources.Validate(form); errs != nil {
		a.renderCategories(w, atPage(r, categoriesAddress), http.StatusBadRequest, &categoryForm{ID: id, Form: form, Errors: errs})
		return
	}

	categories := a.services(r).Categories
	if id != "" {
		if _, err := categories.Update(r.Context(), id, form); err != nil {
			a.actionFailed(w, r, "Failed to update category", categoriesAddress, err)
			return
		}
		a.actionDone(w, r, categoriesAddress, "Category updated.")
		return
	}

	if _, err := categories.Create(r.Context(), form); err != nil {
		a.actionFailed(w, r, "Failed to create category", categoriesAddress, err)
		return
	}
	a.actionDone(w, r, categoriesAddress, "Category created.")
}

func (a *Admin) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.services(r).Categories.Delete(r.Context(), r.PathValue("id")); err != nil {
		a.actionFailed(w, r, "Failed to delete category", categoriesAddress, err)
		return
	}
	a.actionDone(w, r, categoriesAddress, "Category deleted")
}

func (a *Admin) handleCommunity(w http.ResponseWriter, r *http.Request) {
	members, err := a.services(r).Community.List(r.Context())
	var t *toast
	if err != nil {
		var done bool
		if t, done = a.fetchFailed(w, r, "Failed to fetch community members", err); done {
			return
		}
	}
	a.renderShell(w, r, http.StatusOK, "community", members, t)
}

func (a *Admin) handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.services(r).Community.Delete(r.Context(), r.PathValue("id")); err != nil {
		a.actionFailed(w, r, "Failed to delete member", communityAddress, err)
		return
	}
	a.actionDone(w, r, communityAddress, "Member removed")
}
