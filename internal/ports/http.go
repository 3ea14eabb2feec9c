package ports

import "context"

// HTTPPort is a generic GET capability returning status and body.
// Transport retry policy, if any, lives behind this port; the pipeline
// itself never retries.
type HTTPPort interface {
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}
