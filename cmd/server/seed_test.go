package main

import (
	"context"
	"testing"

	"gamereviews/backend/internal/store"
	"gamereviews/backend/internal/testutil"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s := store.New(testutil.NewDB(t))

	require.NoError(t, seed(ctx, s))
	require.NoError(t, seed(ctx, s))

	games, err := s.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, len(sampleGames))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(sampleUsers))

	reviews, err := s.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, len(sampleReviews))
	assert.Equal(t, "Hades", reviews[1].Game.Title)
	assert.Equal(t, "ana", reviews[1].User.Name)

	assert.Len(t, games[0].Users(), 2)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("database-url"))
	assert.NotNil(t, root.PersistentFlags().Lookup("port"))
}

func TestBindFlags(t *testing.T) {
	root := newRootCmd()
	require.NoError(t, root.PersistentFlags().Set("port", "6000"))
	require.NoError(t, root.PersistentFlags().Set("database-url", "test.db"))

	v := viper.New()
	require.NoError(t, bindFlags(v, root))
	assert.Equal(t, "6000", v.GetString("PORT"))
	assert.Equal(t, "test.db", v.GetString("DATABASE_URL"))

	err := bindFlags(viper.New(), &cobra.Command{Use: "bare"})
	assert.Error(t, err)
}
