package client

import (
	"context"

	"github.com/dmitrijs2005/codetracker/internal/codes"
)

// Client is the transport-agnostic contract of the remote codes API.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	AddCodes(ctx context.Context, items []codes.CodeInput) (*codes.AddResult, error)
	ListCodes(ctx context.Context, params codes.ListParams) (*codes.ListPage, error)
	DeleteCode(ctx context.Context, id string) (*codes.DeleteResult, error)
	UpdateNow(ctx context.Context) (*codes.UpdateNowResult, error)
	GetCodeDetails(ctx context.Context, id string) (*codes.CodeDetails, error)
}
