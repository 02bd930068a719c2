package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"
	FieldRoute     = "route"

	// Entities
	FieldUserID     = "user_id"
	FieldQuestionID = "question_id"
	FieldReplyID    = "reply_id"
	FieldAuthorID   = "author_id"

	// Service
	FieldService   = "service"
	FieldComponent = "component"

	// Store
	FieldDriver = "driver"
)
