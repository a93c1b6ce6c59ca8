package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"
)

// SetToast asks the client to show a toast through the HX-Trigger header,
// merging into any HX-Trigger JSON already set. The same toast is stored in
// a short-lived flash cookie because file downloads and plain redirects never
// see HTMX headers.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	toast := map[string]string{"message": message, "type": toastType}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Warnf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = toast

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Errorf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(toast)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     "flash_toast",
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by the page script
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast sets an error toast and tells HTMX not to swap the error text
// into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
