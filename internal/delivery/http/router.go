package http

import (
	"net/http"
	"slices"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"sectionschedule/internal/delivery/http/controllers"
)

// Router is the application mux. It remembers the methods of its routes so CORS
// preflight can advertise exactly those.
type Router struct {
	*http.ServeMux
	methods []string
}

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards the routes that talk to the section service on the caller's behalf.
func NewRouter(
	scheduleController *controllers.ScheduleController,
	calendarController *controllers.CalendarController,
	editorController *controllers.EditorController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *Router {
	r := &Router{ServeMux: http.NewServeMux()}

	// Stateless schedule checks
	r.handle("POST /schedules/validate", scheduleController.ValidateSchedule)
	r.handle("POST /calendar/layout", scheduleController.Layout)

	// Calendar
	r.handle("GET /calendar/me", requireAuth(calendarController.MyWeek))

	// Editors
	r.handle("POST /editors", editorController.Open)
	r.handle("GET /editors/{editorID}", editorController.Get)
	r.handle("DELETE /editors/{editorID}", editorController.Cancel)
	r.handle("POST /editors/{editorID}/slots", editorController.AddSlot)
	r.handle("DELETE /editors/{editorID}/slots/{index}", editorController.RemoveSlot)
	r.handle("POST /editors/{editorID}/reset", editorController.Reset)
	r.handle("PUT /editors/{editorID}/candidate", editorController.SetCandidate)
	r.handle("POST /editors/{editorID}/candidate/commit", editorController.CommitCandidate)
	r.handle("POST /editors/{editorID}/submit", requireAuth(editorController.Submit))

	// Swagger
	r.Handle("/swagger/", httpSwagger.WrapHandler)

	return r
}

// Methods returns the methods registered on the router in sorted order.
func (r *Router) Methods() []string {
	return slices.Clone(r.methods)
}

func (r *Router) handle(pattern string, h http.HandlerFunc) {
	method, _, _ := strings.Cut(pattern, " ")
	if i, found := slices.BinarySearch(r.methods, method); !found {
		r.methods = slices.Insert(r.methods, i, method)
	}
	r.HandleFunc(pattern, h)
}
