package entity

// Msg is the JSON envelope used by ajax endpoints and the admin export.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj,omitempty"`
}

// Export is the payload of the admin JSON export.
type Export struct {
	Students  any `json:"students"`
	Feedbacks any `json:"feedbacks"`
}
