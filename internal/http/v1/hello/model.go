package hello

// Message is the greeting returned for every call.
const Message = "Hello, EDP!"

// contentType is the media type of the greeting body.
const contentType = "text/plain; charset=utf-8"

// GetOutput carries the raw greeting bytes; huma writes []byte bodies verbatim.
type GetOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
