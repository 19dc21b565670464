package model

// ProcessRequest is the optional JSON body accepted by POST /process.
type ProcessRequest struct {
	Text string `json:"text"`
}

// Transformation pairs the received input with its suffixed form.
// Field order is part of the wire contract.
type Transformation struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
}

// Greeting is the fixed payload served on the root route.
type Greeting struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
