// Package services contains application services for the codes client.
// CodesService fronts the remote API, PreferencesService the local settings.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/codetracker/internal/client/client"
	"github.com/dmitrijs2005/codetracker/internal/codes"
	"github.com/dmitrijs2005/codetracker/internal/logging"
)

// CodesService defines the code operations available to the front-ends.
//
// Every method performs exactly one API call and returns its error wrapped
// with the operation name; nothing is cached or retried.
type CodesService interface {
	Add(ctx context.Context, items []codes.CodeInput) (*codes.AddResult, error)
	List(ctx context.Context, params codes.ListParams) (*codes.ListPage, error)
	Delete(ctx context.Context, id string) error
	UpdateNow(ctx context.Context) (*codes.UpdateNowResult, error)
	Details(ctx context.Context, id string) (*codes.CodeDetails, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type codesService struct {
	client client.Client
	log    logging.Logger
}

func NewCodesService(client client.Client, log logging.Logger) CodesService {
	return &codesService{client: client, log: log.With("mod", "codes.service")}
}

func (s *codesService) Add(ctx context.Context, items []codes.CodeInput) (*codes.AddResult, error) {
	res, err := s.client.AddCodes(ctx, items)
	if err != nil {
		s.log.Error(ctx, "add codes", logging.Err(err), "count", len(items))
		return nil, fmt.Errorf("add codes: %w", err)
	}
	s.log.Info(ctx, "codes submitted", "count", len(items), "added", res.Added, "invalid", len(res.Invalid))
	return res, nil
}

func (s *codesService) List(ctx context.Context, params codes.ListParams) (*codes.ListPage, error) {
	page, err := s.client.ListCodes(ctx, params)
	if err != nil {
		s.log.Error(ctx, "list codes", logging.Err(err))
		return nil, fmt.Errorf("list codes: %w", err)
	}
	return page, nil
}

func (s *codesService) Delete(ctx context.Context, id string) error {
	res, err := s.client.DeleteCode(ctx, id)
	if err != nil {
		s.log.Error(ctx, "delete code", logging.Err(err), "id", id)
		return fmt.Errorf("delete code: %w", err)
	}
	s.log.Info(ctx, "code deleted", "id", id, "message", res.Message)
	return nil
}

func (s *codesService) UpdateNow(ctx context.Context) (*codes.UpdateNowResult, error) {
	res, err := s.client.UpdateNow(ctx)
	if err != nil {
		s.log.Error(ctx, "update now", logging.Err(err))
		return nil, fmt.Errorf("update now: %w", err)
	}
	return res, nil
}

func (s *codesService) Details(ctx context.Context, id string) (*codes.CodeDetails, error) {
	d, err := s.client.GetCodeDetails(ctx, id)
	if err != nil {
		s.log.Error(ctx, "code details", logging.Err(err), "id", id)
		return nil, fmt.Errorf("code details: %w", err)
	}
	return d, nil
}

func (s *codesService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *codesService) Close(ctx context.Context) error {
	return s.client.Close()
}
