package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/pasajeros/internal/records"
)

// SettingsService implements the Connect SettingsService: location data,
// preferences and backups.
type SettingsService struct {
	store *records.Store
	now   func() time.Time
}

// NewSettingsService creates a new SettingsService backed by store.
func NewSettingsService(store *records.Store) *SettingsService {
	return &SettingsService{store: store, now: time.Now}
}

func (s *SettingsService) GetLocations(ctx context.Context, _ *connect.Request[Empty]) (*connect.Response[LocationsResponse], error) {
	return connect.NewResponse(&LocationsResponse{Locations: s.store.GetLocations(ctx)}), nil
}

func (s *SettingsService) SaveLocations(ctx context.Context, req *connect.Request[SaveLocationsRequest]) (*connect.Response[LocationsResponse], error) {
	saved, err := s.store.SaveLocations(ctx, req.Msg.Locations)
	if err != nil {
		slog.Error("SaveLocations failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&LocationsResponse{Locations: saved}), nil
}

func (s *SettingsService) AddDestination(ctx context.Context, req *connect.Request[DestinationRequest]) (*connect.Response[LocationsResponse], error) {
	l, ok := s.store.AddDestination(ctx, req.Msg.Name)
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("destination %q is empty or already exists", req.Msg.Name))
	}
	slog.Info("Destination added", "destination", req.Msg.Name)
	return connect.NewResponse(&LocationsResponse{Locations: l}), nil
}

func (s *SettingsService) RemoveDestination(ctx context.Context, req *connect.Request[DestinationRequest]) (*connect.Response[LocationsResponse], error) {
	l, ok := s.store.RemoveDestination(ctx, req.Msg.Name)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("destination %q not found", req.Msg.Name))
	}
	slog.Info("Destination removed", "destination", req.Msg.Name)
	return connect.NewResponse(&LocationsResponse{Locations: l}), nil
}

func (s *SettingsService) AddPickupPoint(ctx context.Context, req *connect.Request[PickupPointRequest]) (*connect.Response[LocationsResponse], error) {
	l, ok := s.store.AddPickupPoint(ctx, req.Msg.Destination, req.Msg.Point)
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("cannot add pickup point %q to %q", req.Msg.Point, req.Msg.Destination))
	}
	return connect.NewResponse(&LocationsResponse{Locations: l}), nil
}

func (s *SettingsService) RemovePickupPoint(ctx context.Context, req *connect.Request[PickupPointRequest]) (*connect.Response[LocationsResponse], error) {
	l, ok := s.store.RemovePickupPoint(ctx, req.Msg.Destination, req.Msg.Point)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound,
			fmt.Errorf("pickup point %q not found for %q", req.Msg.Point, req.Msg.Destination))
	}
	return connect.NewResponse(&LocationsResponse{Locations: l}), nil
}

func (s *SettingsService) GetSettings(ctx context.Context, _ *connect.Request[Empty]) (*connect.Response[SettingsMessage], error) {
	return connect.NewResponse(&SettingsMessage{Settings: s.store.GetSettings(ctx)}), nil
}

func (s *SettingsService) SaveSettings(ctx context.Context, req *connect.Request[SettingsMessage]) (*connect.Response[SettingsMessage], error) {
	if err := s.store.SaveSettings(ctx, req.Msg.Settings); err != nil {
		if errors.Is(err, records.ErrValidation) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		slog.Error("SaveSettings failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&SettingsMessage{Settings: req.Msg.Settings}), nil
}

// ExportBackup returns the full backup bundle.
func (s *SettingsService) ExportBackup(ctx context.Context, _ *connect.Request[Empty]) (*connect.Response[BackupMessage], error) {
	bundle, err := s.store.ExportBundle(ctx)
	if err != nil {
		slog.Error("ExportBackup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&BackupMessage{
		FileName: BackupFileName(s.now()),
		Bundle:   bundle,
	}), nil
}

// ImportBackup restores a bundle. Nothing is written unless the whole bundle
// is valid.
func (s *SettingsService) ImportBackup(ctx context.Context, req *connect.Request[BackupMessage]) (*connect.Response[Empty], error) {
	if !s.store.ImportBundle(ctx, req.Msg.Bundle) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("backup could not be imported"))
	}
	slog.Info("Backup imported", "bytes", len(req.Msg.Bundle))
	return connect.NewResponse(&Empty{}), nil
}

// BackupFileName suggests a download name for a backup made at now.
func BackupFileName(now time.Time) string {
	return "backup_pasajeros_" + now.Format("2006-01-02") + ".json"
}
