/*
Package server implements msgpack IPC for path completion services.

The server speaks binary msgpack over stdin/stdout on a request/response
model. Each message carries an ID so clients can pipeline requests.

Completion requests use this shape:

	{"id": "req_001", "cmd": "complete", "p": "doc", "l": 24}

The server responds with suggestions ranked by access frequency:

	{"id": "req_001", "s": [{"w": "Documents", "r": 1}, {"w": "Docker", "r": 2}], "c": 2, "t": 145}

Stats requests return counters from the completion index, its result
cache and its registration filter:

	{"id": "st_001", "cmd": "stats"}

Error responses carry a message and an HTTP-flavored status code. A
ready signal is emitted on startup before the first request is read.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`
	Prefix  string `msgpack:"p,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// ResponseSuggestion is one ranked completion candidate.
type ResponseSuggestion struct {
	Path string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
	Freq int    `msgpack:"f,omitempty"`
}

// CompletionResponse answers a complete request.
type CompletionResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	Prefix      string               `msgpack:"p"`
	TimeTaken   int64                `msgpack:"t"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID       string         `msgpack:"id"`
	Counters map[string]int `msgpack:"counters"`
}

// StatusResponse reports server state, used for the ready signal and
// ping replies.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
