package httpapi

import (
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"edgecam/internal/onvif"
)

// Coordinator is the subset of trigger.Coordinator the ONVIF notification
// handler needs.
type Coordinator interface {
	OnONVIFMotion(cameraIP string)
}

// ONVIFNotificationHandler implements POST /onvif_notifications: the
// consumer address ONVIF cameras push WS-Notification envelopes to once
// subscribed. The camera is identified by the subscription reference address
// the supervisor registered, falling back to the request's source IP when a
// camera's firmware echoes an address we can't parse.
type ONVIFNotificationHandler struct {
	Coordinator Coordinator
}

// NewONVIFNotificationHandler constructs the handler.
func NewONVIFNotificationHandler(coordinator Coordinator) *ONVIFNotificationHandler {
	return &ONVIFNotificationHandler{Coordinator: coordinator}
}

// ServeHTTP parses the SOAP body, resolves the motion event to a camera IP,
// and feeds the coordinator. It always responds 200 so a camera's firmware
// never retries a delivery it considers failed, tolerating client
// disconnects mid-response.
func (h *ONVIFNotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		log.Printf("[httpapi] onvif notification read failed: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	notification, err := onvif.ParseNotification(body)
	if err != nil {
		log.Printf("[httpapi] onvif notification parse failed: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}
	if notification == nil || !notification.IsMotion {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Notification handled"))
		return
	}

	cameraIP := cameraIPFromAddress(notification.SubscriptionAddress)
	if cameraIP == "" {
		cameraIP = clientIP(r)
	}
	if cameraIP != "" {
		h.Coordinator.OnONVIFMotion(cameraIP)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Notification handled"))
}

// cameraIPFromAddress extracts the host from a subscription reference
// address such as http://192.168.1.50:80/onvif/event_service.
func cameraIPFromAddress(address string) string {
	if address == "" {
		return ""
	}
	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	return host
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
