package enhance

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/editor"
)

// Remote delegates to the backend's summary enhancement endpoint.
type Remote struct {
	client api.CVClient
}

var _ editor.Enhancer = (*Remote)(nil)

func NewRemote(client api.CVClient) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Enhance(ctx context.Context, text string) (string, error) {
	out, err := r.client.EnhanceSummary(ctx, text)
	if err != nil {
		return "", fmt.Errorf("enhance summary: %w", err)
	}
	return Sanitize(out)
}
