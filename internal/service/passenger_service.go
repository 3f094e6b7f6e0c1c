package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/pasajeros/internal/calculator"
	"github.com/mmynk/pasajeros/internal/export"
	"github.com/mmynk/pasajeros/internal/query"
	"github.com/mmynk/pasajeros/internal/records"
)

// PassengerService implements the Connect PassengerService.
type PassengerService struct {
	store *records.Store
	now   func() time.Time
}

// NewPassengerService creates a new PassengerService backed by store.
func NewPassengerService(store *records.Store) *PassengerService {
	return &PassengerService{store: store, now: time.Now}
}

// ListPassengers returns the filtered view of the collection and its totals.
func (s *PassengerService) ListPassengers(ctx context.Context, req *connect.Request[ListPassengersRequest]) (*connect.Response[ListPassengersResponse], error) {
	filters, err := checkFilters(req.Msg.Filters)
	if err != nil {
		return nil, err
	}

	all := s.store.ListRecords(ctx)
	view := query.FilterRecords(all, req.Msg.Search, filters)

	slog.Debug("ListPassengers",
		"stored", len(all),
		"matched", len(view),
		"search", req.Msg.Search,
	)

	return connect.NewResponse(&ListPassengersResponse{
		Passengers: view,
		Totals:     calculator.Summarize(view),
		Stored:     len(all),
	}), nil
}

// AddPassenger validates and stores a new passenger.
func (s *PassengerService) AddPassenger(ctx context.Context, req *connect.Request[AddPassengerRequest]) (*connect.Response[PassengerResponse], error) {
	slog.Info("AddPassenger request received",
		"name", req.Msg.Passenger.Name,
		"destination", req.Msg.Passenger.Destination,
	)

	if err := records.ValidateNew(req.Msg.Passenger, s.store.GetLocations(ctx)); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	stored, err := s.store.AddRecord(ctx, req.Msg.Passenger)
	if err != nil {
		slog.Error("AddPassenger failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Passenger registered", "record_id", stored.ID)
	return connect.NewResponse(&PassengerResponse{Passenger: stored}), nil
}

// UpdatePassenger replaces a stored passenger.
func (s *PassengerService) UpdatePassenger(ctx context.Context, req *connect.Request[UpdatePassengerRequest]) (*connect.Response[PassengerResponse], error) {
	p := req.Msg.Passenger
	if err := records.Validate(p); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if !s.store.UpdateRecord(ctx, p) {
		return nil, notFound(p.ID)
	}

	slog.Info("Passenger updated", "record_id", p.ID)
	return connect.NewResponse(&PassengerResponse{Passenger: p}), nil
}

// DeletePassenger removes a stored passenger.
func (s *PassengerService) DeletePassenger(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[Empty], error) {
	if !s.store.DeleteRecord(ctx, req.Msg.ID) {
		return nil, notFound(req.Msg.ID)
	}

	slog.Info("Passenger deleted", "record_id", req.Msg.ID)
	return connect.NewResponse(&Empty{}), nil
}

// ToggleTraveled flips a passenger's traveled flag.
func (s *PassengerService) ToggleTraveled(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[PassengerResponse], error) {
	p, ok := s.store.ToggleTraveled(ctx, req.Msg.ID)
	if !ok {
		return nil, notFound(req.Msg.ID)
	}
	return connect.NewResponse(&PassengerResponse{Passenger: p}), nil
}

// TogglePaid flips a passenger's paid flag.
func (s *PassengerService) TogglePaid(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[PassengerResponse], error) {
	p, ok := s.store.TogglePaid(ctx, req.Msg.ID)
	if !ok {
		return nil, notFound(req.Msg.ID)
	}
	return connect.NewResponse(&PassengerResponse{Passenger: p}), nil
}

// ExportPassengers renders the filtered view in the requested format.
func (s *PassengerService) ExportPassengers(ctx context.Context, req *connect.Request[ExportPassengersRequest]) (*connect.Response[ExportPassengersResponse], error) {
	format, err := export.ParseFormat(req.Msg.Format)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	filters, err := checkFilters(req.Msg.Filters)
	if err != nil {
		return nil, err
	}

	view := query.FilterRecords(s.store.ListRecords(ctx), req.Msg.Search, filters)
	now := s.now()

	var buf bytes.Buffer
	if err := export.Render(&buf, format, view, now); err != nil {
		if errors.Is(err, export.ErrNoRecords) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, err)
		}
		slog.Error("ExportPassengers failed", "format", format, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Passengers exported", "format", format, "records", len(view), "bytes", buf.Len())
	return connect.NewResponse(&ExportPassengersResponse{
		FileName:    export.FileName(format, now),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}), nil
}

// WatchChanges streams a message every time stored data may have changed,
// until the client goes away.
func (s *PassengerService) WatchChanges(ctx context.Context, _ *connect.Request[Empty], stream *connect.ServerStream[records.Change]) error {
	changes, unsubscribe := s.store.Subscribe()
	defer unsubscribe()

	slog.Debug("WatchChanges subscriber connected")
	for {
		select {
		case <-ctx.Done():
			slog.Debug("WatchChanges subscriber gone")
			return nil
		case c, ok := <-changes:
			if !ok {
				return nil
			}
			if err := stream.Send(&c); err != nil {
				return err
			}
		}
	}
}

func checkFilters(f query.Filters) (query.Filters, error) {
	status, err := query.ParsePaidStatus(string(f.PaidStatus))
	if err != nil {
		return f, connect.NewError(connect.CodeInvalidArgument, err)
	}
	f.PaidStatus = status
	return f, nil
}

func notFound(id int64) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf("passenger %d not found", id))
}
