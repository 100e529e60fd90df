package sqlstore_test

import (
	"os"
	"testing"
	"time"

	"github.com/nremp/dashboard/pkg/store"
	"github.com/nremp/dashboard/pkg/store/sqlstore"
	"github.com/nremp/dashboard/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
	store *sqlstore.Store
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	os.Setenv("LOG_FORMAT", "human")
	os.Setenv("GIN_MODE", "debug")
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	s, err := sqlstore.Open(":memory:")
	suite.Require().NoError(err, "Database connection failed")
	suite.store = s
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	suite.store.Close()
}

// collect subscribes to a collection and forwards every snapshot.
func (suite *TestSuiteStandard) collect(collection, orderBy string) (store.Subscription, <-chan store.Snapshot) {
	snapshots := make(chan store.Snapshot, 64)
	sub, err := suite.store.Subscribe(suite.T().Context(), collection, orderBy, func(snap store.Snapshot, err error) {
		suite.Assert().NoError(err)
		snapshots <- snap
	})
	suite.Require().NoError(err)
	return sub, snapshots
}

// waitFor reads snapshots until one has n children.
func (suite *TestSuiteStandard) waitFor(snapshots <-chan store.Snapshot, n int) store.Snapshot {
	timeout := time.After(5 * time.Second)
	for {
		select {
		case snap := <-snapshots:
			if len(snap.Children) == n {
				return snap
			}
		case <-timeout:
			suite.FailNowf("timeout", "no snapshot with %d children received", n)
			return store.Snapshot{}
		}
	}
}

func keys(snap store.Snapshot) []string {
	k := make([]string, 0, len(snap.Children))
	for _, c := range snap.Children {
		k = append(k, c.Key)
	}
	return k
}

func TestPersistence(t *testing.T) {
	path := test.TmpFile(t)

	s, err := sqlstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(t.Context(), "users/u1", map[string]any{"email": "a@example.com"}))
	require.NoError(t, s.Close())

	s, err = sqlstore.Open(path)
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.Get(t.Context(), "users/u1/email")
	require.NoError(t, err)
	assert.Equal(t, `"a@example.com"`, string(doc))
}
