package obs

import (
	"context"
	"log"
	"strings"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID attaches a request ID that Time includes in its log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of op when the returned func runs. kv is an
// optional list of key/value pairs appended to the line as key=value.
//
//	defer obs.Time(ctx, "layout.save", "name", name)(&err)
func Time(ctx context.Context, op string, kv ...string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	var extra strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		extra.WriteString(" " + kv[i] + "=" + kv[i+1])
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s%s dur=%dus err=%v", reqID, op, extra.String(), dur.Microseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s%s dur=%dus", reqID, op, extra.String(), dur.Microseconds())
	}
}
