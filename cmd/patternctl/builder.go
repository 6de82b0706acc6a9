package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/adapters/executor/local"
	"github.com/kompox/patternapi/adapters/executor/ws"
	"github.com/kompox/patternapi/adapters/store/inmem"
	"github.com/kompox/patternapi/adapters/store/rdb"
	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/usecase/call"
	"github.com/kompox/patternapi/usecase/journal"
)

// buildCallRepo selects the journal store from db.url.
func buildCallRepo(cmd *cobra.Command) (domain.CallRecordRepository, error) {
	dbURL := stateFrom(cmd).cfg.DB.URL
	switch {
	case dbURL == "" || strings.HasPrefix(dbURL, "memory:"):
		return inmem.NewStore().CallRepo, nil
	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return rdb.NewCallRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

func buildInfo() model.BuildInfo {
	return model.BuildInfo{BuildType: "patternctl", Version: version}
}

// buildLocalMux returns the in-process executor serving the patterns this
// binary can answer by itself.
func buildLocalMux(repo domain.CallRecordRepository) *local.Mux {
	m := local.NewMux()
	local.HandleDescribe(m, buildInfo())
	local.HandleAuditLog(m, repo)
	return m
}

// buildExecutor dials server.url when set and falls back to the local mux.
// The returned close function is never nil.
func buildExecutor(ctx context.Context, cmd *cobra.Command, repo domain.CallRecordRepository) (model.Executor, func() error, error) {
	srv := stateFrom(cmd).cfg.Server
	if srv.URL == "" {
		return buildLocalMux(repo), func() error { return nil }, nil
	}
	header := http.Header{}
	for k, v := range srv.Header {
		header.Set(k, v)
	}
	c, err := ws.Dial(ctx, ws.Options{URL: srv.URL, Header: header, Username: srv.Username})
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}

// buildCallUseCase creates the call use case. The close function releases
// the executor connection.
func buildCallUseCase(ctx context.Context, cmd *cobra.Command) (*call.UseCase, func() error, error) {
	repo, err := buildCallRepo(cmd)
	if err != nil {
		return nil, nil, err
	}
	exec, closeFn, err := buildExecutor(ctx, cmd, repo)
	if err != nil {
		return nil, nil, err
	}
	srv := stateFrom(cmd).cfg.Server
	return &call.UseCase{
		Repos:    &call.Repos{Call: repo},
		Executor: exec,
		Username: srv.Username,
		Timeout:  srv.Timeout,
	}, closeFn, nil
}

// buildJournalUseCase creates the journal use case.
func buildJournalUseCase(cmd *cobra.Command) (*journal.UseCase, error) {
	repo, err := buildCallRepo(cmd)
	if err != nil {
		return nil, err
	}
	return &journal.UseCase{Repos: &journal.Repos{Call: repo}}, nil
}
