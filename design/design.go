package design

import (
	. "goa.design/goa/v3/dsl"
)

// API definition
var _ = API("edgecam", func() {
	Title("Edge Camera Recognition Agent")
	Description("On-premise edge agent: RTSP ingest, trigger-driven face recognition, and cloud artifact/event publishing")
	Version("1.0")
	Server("edgecam", func() {
		Host("localhost", func() {
			URI("http://localhost:7777")
		})
	})
})

// Error types

var NotFoundError = Type("NotFoundError", func() {
	Description("Resource not found error")
	Field(1, "message", String, "Error message")
	Field(2, "id", String, "Resource ID")
	Required("message", "id")
})

var BadRequestError = Type("BadRequestError", func() {
	Description("Bad request error")
	Field(1, "message", String, "Error message")
	Field(2, "details", String, "Error details")
	Required("message")
})

var InternalError = Type("InternalError", func() {
	Description("Internal server error")
	Field(1, "message", String, "Error message")
	Required("message")
})

var UnauthorizedError = Type("UnauthorizedError", func() {
	Description("Invalid credentials")
	Field(1, "message", String, "Error message")
	Required("message")
})

var NotReadyError = Type("NotReadyError", func() {
	Description("Service is not ready to serve traffic")
	Field(1, "message", String, "Error message")
	Required("message")
})

// Data types

var LockInfo = Type("LockInfo", func() {
	Description("One physical lock asset attached to a camera")
	Field(1, "asset_id", String, "Lock asset id")
	Field(2, "with_keypad", Boolean, "Whether the lock carries its own keypad sensor")
	Required("asset_id", "with_keypad")
})

var CameraInfo = Type("CameraInfo", func() {
	Description("Camera descriptor as held by the warm cache")
	Field(1, "ip", String, "Camera IP address, the primary key")
	Field(2, "uuid", String, "Camera UUID", func() {
		Format(FormatUUID)
	})
	Field(3, "name", String, "Camera name")
	Field(4, "username", String, "RTSP/ONVIF username")
	Field(5, "codec", String, "RTSP codec", func() {
		Enum("h264", "h265")
	})
	Field(6, "framerate", Int, "Capture framerate")
	Field(7, "is_detecting", Boolean, "Whether the camera runs detection sessions")
	Field(8, "is_recording", Boolean, "Whether the camera records trigger-driven clips")
	Field(9, "onvif_enabled", Boolean, "Whether ONVIF motion subscription is active")
	Field(10, "onvif_port", Int, "ONVIF event service port")
	Field(11, "locks", ArrayOf(LockInfo), "Locks attached to this camera")
	Required("ip", "uuid", "name", "codec")
})

var MemberInfo = Type("MemberInfo", func() {
	Description("One enrolled roster member, without the raw embedding")
	Field(1, "member_no", String, "Member number")
	Field(2, "reservation_code", String, "Reservation code")
	Field(3, "listing_id", String, "Listing id")
	Field(4, "full_name", String, "Member full name")
	Field(5, "key_notified", Boolean, "Whether the member has been key-notified")
	Required("member_no", "reservation_code")
})

// Health check service
var _ = Service("health", func() {
	Description("Liveness and readiness probes")

	Method("healthz", func() {
		Description("Liveness probe: the process is up")
		Result(Empty)
		HTTP(func() {
			GET("/healthz")
			Response(StatusOK)
		})
	})

	Method("readyz", func() {
		Description("Readiness probe: the bus connection and roster cache are usable")
		Result(Empty)
		Error("not_ready", NotReadyError, "A dependency is not ready")
		HTTP(func() {
			GET("/readyz")
			Response(StatusOK)
			Response("not_ready", StatusServiceUnavailable)
		})
	})
})

// Auth service issues the bearer JWTs the camera/roster services require
// when AUTH_ENABLED is set.
var _ = Service("auth", func() {
	Description("Operator authentication")

	Method("login", func() {
		Description("Exchange the shared operator credential for a bearer JWT")
		Payload(func() {
			Field(1, "username", String, "Operator username")
			Field(2, "password", String, "Operator password")
			Required("username", "password")
		})
		Result(func() {
			Field(1, "token", String, "Bearer JWT")
			Field(2, "expires_at", Int64, "Token expiry, unix seconds")
			Required("token", "expires_at")
		})
		Error("unauthorized", UnauthorizedError, "Invalid credentials or auth disabled")
		HTTP(func() {
			POST("/api/v1/auth/login")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

// Camera management service: CRUD over the warm-cached camera descriptors
// the supervisor reconciles against.
var _ = Service("camera", func() {
	Description("Camera descriptor management")

	Method("list", func() {
		Description("List every known camera")
		Result(ArrayOf(CameraInfo))
		Error("internal", InternalError, "Store lookup failed")
		HTTP(func() {
			GET("/api/v1/cameras")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("get", func() {
		Description("Get one camera by IP")
		Payload(func() {
			Field(1, "ip", String, "Camera IP address")
			Required("ip")
		})
		Result(CameraInfo)
		Error("not_found", NotFoundError, "Camera not found")
		Error("internal", InternalError, "Store lookup failed")
		HTTP(func() {
			GET("/api/v1/cameras/{ip}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("create", func() {
		Description("Register a new camera and trigger a reconciliation pass")
		Payload(func() {
			Field(1, "ip", String, "Camera IP address")
			Field(2, "uuid", String, "Camera UUID")
			Field(3, "name", String, "Camera name")
			Field(4, "username", String, "RTSP/ONVIF username", func() {
				Default("")
			})
			Field(5, "password", String, "RTSP/ONVIF password", func() {
				Default("")
			})
			Field(6, "codec", String, "RTSP codec", func() {
				Enum("h264", "h265")
				Default("h264")
			})
			Field(7, "framerate", Int, "Capture framerate", func() {
				Default(10)
			})
			Field(8, "onvif_enabled", Boolean, "Whether to subscribe for ONVIF motion", func() {
				Default(false)
			})
			Field(9, "onvif_port", Int, "ONVIF event service port", func() {
				Default(80)
			})
			Field(10, "locks", ArrayOf(LockInfo), "Locks attached to this camera")
			Required("ip", "uuid", "name")
		})
		Result(CameraInfo)
		Error("bad_request", BadRequestError, "Invalid camera descriptor")
		HTTP(func() {
			POST("/api/v1/cameras")
			Response(StatusCreated)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("update", func() {
		Description("Update a camera descriptor and trigger a reconciliation pass")
		Payload(func() {
			Field(1, "ip", String, "Camera IP address")
			Field(2, "name", String, "Camera name")
			Field(3, "username", String, "RTSP/ONVIF username")
			Field(4, "password", String, "RTSP/ONVIF password")
			Field(5, "is_detecting", Boolean, "Whether the camera runs detection sessions")
			Field(6, "is_recording", Boolean, "Whether the camera records trigger-driven clips")
			Field(7, "onvif_enabled", Boolean, "Whether ONVIF motion subscription is active")
			Field(8, "onvif_port", Int, "ONVIF event service port")
			Field(9, "locks", ArrayOf(LockInfo), "Locks attached to this camera")
			Required("ip")
		})
		Result(CameraInfo)
		Error("not_found", NotFoundError, "Camera not found")
		Error("bad_request", BadRequestError, "Invalid camera descriptor")
		Error("internal", InternalError, "Store lookup failed")
		HTTP(func() {
			PUT("/api/v1/cameras/{ip}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("bad_request", StatusBadRequest)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("delete", func() {
		Description("Remove a camera and trigger a reconciliation pass")
		Payload(func() {
			Field(1, "ip", String, "Camera IP address")
			Required("ip")
		})
		Result(Empty)
		Error("not_found", NotFoundError, "Camera not found")
		HTTP(func() {
			DELETE("/api/v1/cameras/{ip}")
			Response(StatusNoContent)
			Response("not_found", StatusNotFound)
		})
	})

	Method("reload", func() {
		Description("Force an immediate reconciliation pass, mirroring the gocheckin/reset_camera control topic")
		Result(Empty)
		HTTP(func() {
			POST("/api/v1/cameras/reload")
			Response(StatusOK)
		})
	})
})

// Roster service exposes the RosterCache for operator visibility and
// forced refresh, mirroring the /recognise handler's own scheduled refresh.
var _ = Service("roster", func() {
	Description("Active-member roster inspection and refresh")

	Method("list", func() {
		Description("List the members currently loaded into the matching matrix")
		Result(ArrayOf(MemberInfo))
		HTTP(func() {
			GET("/api/v1/roster")
			Response(StatusOK)
		})
	})

	Method("refresh", func() {
		Description("Force an immediate roster refresh from the external member source")
		Result(func() {
			Field(1, "rebuilt", Boolean, "Whether the matrix was rebuilt (the identity set changed)")
			Field(2, "count", Int, "Member count after the refresh")
			Required("rebuilt", "count")
		})
		Error("internal", InternalError, "Refresh source failed")
		HTTP(func() {
			POST("/api/v1/roster/refresh")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})
})
