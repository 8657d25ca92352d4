package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutorkit/internal/graphio"
	"github.com/abhisek/tutorkit/internal/logging"
	"github.com/abhisek/tutorkit/internal/mastery"
	"github.com/abhisek/tutorkit/internal/skillgraph"
	"github.com/abhisek/tutorkit/internal/store"
)

// snapshotsKept is how many snapshots survive pruning after each save.
const snapshotsKept = 10

func newLogger(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(verbose)
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	return id
}

func loadGraph(cmd *cobra.Command) (*skillgraph.Graph, error) {
	path, _ := cmd.Flags().GetString("graph")
	if path == "" {
		return nil, fmt.Errorf("no skill graph configured, pass --graph")
	}
	g, err := graphio.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load skill graph: %w", err)
	}
	return g, nil
}

// openService opens the store and rebuilds the mastery service from the
// latest snapshot. The caller must Close the returned store.
func openService(ctx context.Context, cmd *cobra.Command) (*store.Store, *mastery.Service, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load latest snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}
	return st, mastery.NewService(data, st.EventRepo()), nil
}

// saveSnapshot persists the service state and prunes old snapshots.
func saveSnapshot(ctx context.Context, st *store.Store, svc *mastery.Service) error {
	repo := st.SnapshotRepo()
	if err := repo.Save(ctx, svc.SnapshotData()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := repo.Prune(ctx, snapshotsKept); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
