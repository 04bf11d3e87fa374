package invoice

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/javierDev03/invoices/app/event"
	"github.com/javierDev03/invoices/app/session"
	"github.com/javierDev03/invoices/app/view"
	"github.com/javierDev03/invoices/internal/document"
	"github.com/javierDev03/invoices/internal/invoice"
)

const exportBlockedMessage = "Completa la información de la empresa, " +
	"el cliente y agrega al menos un item para generar el PDF."

type HandlerGroup struct {
	appName string
	views   *view.Store
}

func NewHandlerGroup(appName string, views *view.Store) *HandlerGroup {
	return &HandlerGroup{
		appName: appName,
		views:   views,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/", hg.handleIndex)
	r.Put("/invoice/fields", hg.handleSetField)
	r.Put("/invoice/tax-rate", hg.handleSetTaxRate)
	r.Post("/invoice/items", hg.handleAddItem)
	r.Put("/invoice/items/{id}", hg.handleUpdateItem)
	r.Delete("/invoice/items/{id}", hg.handleRemoveItem)
	r.Get("/invoice/pdf", hg.handleExport)
}

func (hg *HandlerGroup) handleIndex(w http.ResponseWriter, r *http.Request) {
	editor, err := session.Editor(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := hg.views.Render(w, "page.gohtml", hg.data(editor)); err != nil {
		slog.Error("failed to render page", "error", err)
	}
}

type fieldEditRequest struct {
	Field string `form:"field"`
	Value string `form:"value"`
}

// fieldEditRequest satisfies [render.Binder]
func (fer *fieldEditRequest) Bind(r *http.Request) error {
	if fer.Field == "" {
		return errors.New("Missing field name.")
	}

	return nil
}

func (hg *HandlerGroup) handleSetField(w http.ResponseWriter, r *http.Request) {
	req := &fieldEditRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return
	}

	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	editor.SetField(invoice.Field(req.Field), req.Value)

	hg.renderWorkspace(w, editor)
}

type taxRateRequest struct {
	Value string `form:"value"`
}

// taxRateRequest satisfies [render.Binder]
func (trr *taxRateRequest) Bind(r *http.Request) error { return nil }

func (hg *HandlerGroup) handleSetTaxRate(w http.ResponseWriter, r *http.Request) {
	req := &taxRateRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return
	}

	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	editor.SetTaxRate(req.Value)

	hg.renderWorkspace(w, editor)
}

func (hg *HandlerGroup) handleAddItem(w http.ResponseWriter, r *http.Request) {
	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	editor.AddItem()

	hg.renderWorkspace(w, editor)
}

func (hg *HandlerGroup) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		showError(w, http.StatusBadRequest, errors.New("Invalid item id."))
		return
	}

	req := &fieldEditRequest{}
	if err := render.Bind(r, req); err != nil {
		showError(w, http.StatusBadRequest, err)
		return
	}

	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	editor.UpdateItem(id, invoice.ItemField(req.Field), req.Value)

	hg.renderWorkspace(w, editor)
}

func (hg *HandlerGroup) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		showError(w, http.StatusBadRequest, errors.New("Invalid item id."))
		return
	}

	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	editor.RemoveItem(id)

	hg.renderWorkspace(w, editor)
}

func (hg *HandlerGroup) handleExport(w http.ResponseWriter, r *http.Request) {
	editor, err := session.Editor(r.Context())
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	snapshot := editor.Snapshot()
	if !snapshot.CanExport() {
		_ = htmx.NewResponse().
			StatusCode(http.StatusUnprocessableEntity).
			Reswap(htmx.SwapNone).
			AddTrigger(
				event.TriggerDisableExport,
				event.TriggerSetErrMessage(exportBlockedMessage),
			).
			Write(w)
		return
	}

	pdf, err := document.NewPDF(document.Layout(snapshot)).ProduceBytes()
	if err != nil {
		showError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+snapshot.DocumentName()+`"`)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))

	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write pdf response", "error", err)
	}
}

// renderWorkspace re-renders the form and preview after a mutation and
// refreshes the export gating events.
func (hg *HandlerGroup) renderWorkspace(w http.ResponseWriter, editor *invoice.Editor) {
	data := hg.data(editor)

	resp := htmx.NewResponse().
		AddTrigger(event.TriggerSetErrMessage(""))

	if data.CanExport {
		resp = resp.AddTrigger(event.TriggerEnableExport)
	} else {
		resp = resp.AddTrigger(event.TriggerDisableExport)
	}

	if err := resp.Write(w); err != nil {
		slog.Error("failed to write htmx response", "error", err)
		return
	}

	if err := hg.views.Render(w, "workspace.gohtml", data); err != nil {
		slog.Error("failed to render workspace", "error", err)
	}
}

func (hg *HandlerGroup) data(editor *invoice.Editor) view.Data {
	snapshot := editor.Snapshot()

	return view.Data{
		AppName:   hg.appName,
		Invoice:   snapshot,
		TaxRate:   editor.TaxRate(),
		CanExport: snapshot.CanExport(),
	}
}

func showError(w http.ResponseWriter, code int, err error) {
	_ = htmx.NewResponse().
		StatusCode(code).
		Reswap(htmx.SwapNone).
		AddTrigger(event.TriggerSetErrMessage(err.Error())).
		Write(w)
}
