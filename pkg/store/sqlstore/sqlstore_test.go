package sqlstore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nremp/dashboard/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func (suite *TestSuiteStandard) TestSetGet() {
	ctx := context.Background()

	err := suite.store.Set(ctx, "users/u1", map[string]any{"email": "a@example.com", "role": "admin"})
	suite.Require().NoError(err)

	doc, err := suite.store.Get(ctx, "users/u1")
	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"email":"a@example.com","role":"admin"}`, string(doc))

	role, err := suite.store.Get(ctx, "users/u1/role")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), `"admin"`, string(role))
}

func (suite *TestSuiteStandard) TestGetMissing() {
	ctx := context.Background()

	_, err := suite.store.Get(ctx, "users/nobody")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)

	suite.Require().NoError(suite.store.Set(ctx, "users/u1", map[string]any{"email": "a@example.com"}))
	_, err = suite.store.Get(ctx, "users/u1/role")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

func (suite *TestSuiteStandard) TestInvalidPaths() {
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"Get collection", func() error { _, err := suite.store.Get(ctx, "users"); return err }},
		{"Set collection", func() error { return suite.store.Set(ctx, "users", map[string]any{}) }},
		{"Set too deep", func() error { return suite.store.Set(ctx, "a/b/c/d", 1) }},
		{"Update field path", func() error { return suite.store.Update(ctx, "users/u1/role", map[string]any{"a": 1}) }},
		{"Update invalid field", func() error { return suite.store.Update(ctx, "users/u1", map[string]any{"a.b": 1}) }},
		{"Push document", func() error { _, err := suite.store.Push(ctx, "users/u1"); return err }},
		{"Subscribe document", func() error {
			_, err := suite.store.Subscribe(ctx, "users/u1", "", func(store.Snapshot, error) {})
			return err
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), store.ErrInvalidPath)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateMergesFields() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "notas_fiscais/n1", map[string]any{
		"client":   "ACME",
		"status":   "Unpaid",
		"material": "Steel",
	}))

	err := suite.store.Update(ctx, "notas_fiscais/n1", map[string]any{
		"status":   "Paid",
		"material": nil,
	})
	suite.Require().NoError(err)

	doc, err := suite.store.Get(ctx, "notas_fiscais/n1")
	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"client":"ACME","status":"Paid"}`, string(doc))
}

func (suite *TestSuiteStandard) TestUpdateCreatesDocument() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Update(ctx, "users/u2", map[string]any{"role": "viewer"}))

	doc, err := suite.store.Get(ctx, "users/u2")
	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"role":"viewer"}`, string(doc))
}

func (suite *TestSuiteStandard) TestSetField() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "users/u1", map[string]any{"email": "a@example.com", "role": "viewer"}))
	suite.Require().NoError(suite.store.Set(ctx, "users/u1/role", "editor"))

	doc, err := suite.store.Get(ctx, "users/u1")
	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"email":"a@example.com","role":"editor"}`, string(doc))

	// nil removes the field
	suite.Require().NoError(suite.store.Set(ctx, "users/u1/role", nil))
	doc, err = suite.store.Get(ctx, "users/u1")
	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `{"email":"a@example.com"}`, string(doc))
}

func (suite *TestSuiteStandard) TestRemove() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "users/u1", map[string]any{"email": "a@example.com"}))
	suite.Require().NoError(suite.store.Remove(ctx, "users/u1"))

	_, err := suite.store.Get(ctx, "users/u1")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)

	// Removing missing documents and fields is not an error
	assert.NoError(suite.T(), suite.store.Remove(ctx, "users/u1"))
	assert.NoError(suite.T(), suite.store.Remove(ctx, "users/u1/role"))
}

func (suite *TestSuiteStandard) TestMultiPathUpdate() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "notas_fiscais/old", map[string]any{"client": "Old"}))

	err := suite.store.Update(ctx, "", map[string]any{
		"notas_fiscais/a": map[string]any{"client": "A"},
		"notas_fiscais/b": map[string]any{"client": "B"},
		"notas_fiscais/old": nil,
	})
	suite.Require().NoError(err)

	_, err = suite.store.Get(ctx, "notas_fiscais/old")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)

	for _, key := range []string{"a", "b"} {
		_, err := suite.store.Get(ctx, store.Join("notas_fiscais", key))
		assert.NoError(suite.T(), err, key)
	}
}

func (suite *TestSuiteStandard) TestMultiPathUpdateInvalidWritesNothing() {
	ctx := context.Background()

	err := suite.store.Update(ctx, "", map[string]any{
		"notas_fiscais/a": map[string]any{"client": "A"},
		"notas_fiscais":   map[string]any{"client": "B"},
	})
	assert.ErrorIs(suite.T(), err, store.ErrInvalidPath)

	_, err = suite.store.Get(ctx, "notas_fiscais/a")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

func (suite *TestSuiteStandard) TestServerTimestamp() {
	ctx := context.Background()

	update := map[string]any{}
	for _, key := range []string{"a", "b", "c"} {
		update[store.Join("notas_fiscais", key)] = map[string]any{
			"client":    key,
			"createdAt": store.ServerTimestamp,
		}
	}
	suite.Require().NoError(suite.store.Update(ctx, "", update))
	suite.Require().NoError(suite.store.Set(ctx, "notas_fiscais/d", map[string]any{"createdAt": store.ServerTimestamp}))

	var last int64
	for _, key := range []string{"a", "b", "c", "d"} {
		doc, err := suite.store.Get(ctx, store.Join("notas_fiscais", key))
		suite.Require().NoError(err)

		createdAt := gjson.GetBytes(doc, "createdAt")
		suite.Require().Equal(gjson.Number, createdAt.Type, "placeholder not resolved for %s", key)
		assert.Greater(suite.T(), createdAt.Int(), last, "timestamps must strictly increase")
		assert.InDelta(suite.T(), time.Now().UnixMilli(), createdAt.Int(), float64(time.Minute.Milliseconds()))
		last = createdAt.Int()
	}
}

func (suite *TestSuiteStandard) TestPushKeysAreOrdered() {
	ctx := context.Background()

	var previous string
	for range 20 {
		key, err := suite.store.Push(ctx, "notas_fiscais")
		suite.Require().NoError(err)
		assert.NotEqual(suite.T(), previous, key)
		assert.Greater(suite.T(), key, previous)
		previous = key
	}
}

func (suite *TestSuiteStandard) TestSubscribeInitialSnapshot() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "users/u1", map[string]any{"role": "admin"}))

	sub, snapshots := suite.collect("users", "")
	defer sub.Close()

	snap := suite.waitFor(snapshots, 1)
	assert.Equal(suite.T(), "users", snap.Path)
	assert.True(suite.T(), snap.Exists())
	assert.Equal(suite.T(), "u1", snap.Children[0].Key)
	assert.JSONEq(suite.T(), `{"role":"admin"}`, string(snap.Children[0].Value))
}

func (suite *TestSuiteStandard) TestSubscribeEmptyCollection() {
	sub, snapshots := suite.collect("notas_fiscais", "createdAt")
	defer sub.Close()

	snap := suite.waitFor(snapshots, 0)
	assert.False(suite.T(), snap.Exists())
}

func (suite *TestSuiteStandard) TestSubscribeOrdering() {
	ctx := context.Background()

	docs := map[string]any{
		"notas_fiscais/k1": map[string]any{"createdAt": 300},
		"notas_fiscais/k2": map[string]any{"createdAt": 100},
		"notas_fiscais/k3": map[string]any{"createdAt": 200},
		"notas_fiscais/k4": map[string]any{"client": "no timestamp"},
		"notas_fiscais/k5": map[string]any{"createdAt": "text"},
		"notas_fiscais/k6": map[string]any{"createdAt": 100},
	}
	suite.Require().NoError(suite.store.Update(ctx, "", docs))

	sub, snapshots := suite.collect("notas_fiscais", store.OrderCreatedAt)
	defer sub.Close()

	snap := suite.waitFor(snapshots, 6)
	assert.Equal(suite.T(), []string{"k4", "k2", "k6", "k3", "k1", "k5"}, keys(snap))
}

func (suite *TestSuiteStandard) TestSubscribeReceivesChanges() {
	ctx := context.Background()

	sub, snapshots := suite.collect("users", "")
	defer sub.Close()
	suite.waitFor(snapshots, 0)

	suite.Require().NoError(suite.store.Set(ctx, "users/u1", map[string]any{"role": "admin"}))
	suite.waitFor(snapshots, 1)

	suite.Require().NoError(suite.store.Set(ctx, "users/u2", map[string]any{"role": "viewer"}))
	snap := suite.waitFor(snapshots, 2)
	assert.Equal(suite.T(), []string{"u1", "u2"}, keys(snap))

	suite.Require().NoError(suite.store.Remove(ctx, "users/u1"))
	snap = suite.waitFor(snapshots, 1)
	assert.Equal(suite.T(), []string{"u2"}, keys(snap))
}

func (suite *TestSuiteStandard) TestSubscribeOtherCollectionUnaffected() {
	ctx := context.Background()

	var calls atomic.Int32
	sub, err := suite.store.Subscribe(ctx, "users", "", func(store.Snapshot, error) {
		calls.Add(1)
	})
	suite.Require().NoError(err)
	defer sub.Close()

	assert.Eventually(suite.T(), func() bool { return calls.Load() == 1 }, 5*time.Second, time.Millisecond)

	suite.Require().NoError(suite.store.Set(ctx, "notas_fiscais/n1", map[string]any{"client": "ACME"}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(suite.T(), int32(1), calls.Load())
}

func (suite *TestSuiteStandard) TestNoCallbackAfterClose() {
	ctx := context.Background()

	var calls atomic.Int32
	sub, err := suite.store.Subscribe(ctx, "users", "", func(store.Snapshot, error) {
		calls.Add(1)
	})
	suite.Require().NoError(err)

	assert.Eventually(suite.T(), func() bool { return calls.Load() == 1 }, 5*time.Second, time.Millisecond)
	sub.Close()
	sub.Close()

	for i := range 10 {
		suite.Require().NoError(suite.store.Set(ctx, store.Join("users", fmt.Sprintf("u%d", i)), map[string]any{"role": "viewer"}))
	}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(suite.T(), int32(1), calls.Load(), "callback invoked after Close")
}

func (suite *TestSuiteStandard) TestCloseDetachesSubscriptions() {
	var calls atomic.Int32
	_, err := suite.store.Subscribe(context.Background(), "users", "", func(store.Snapshot, error) {
		calls.Add(1)
	})
	suite.Require().NoError(err)
	assert.Eventually(suite.T(), func() bool { return calls.Load() == 1 }, 5*time.Second, time.Millisecond)

	suite.Require().NoError(suite.store.Close())

	_, err = suite.store.Subscribe(context.Background(), "users", "", func(store.Snapshot, error) {})
	assert.ErrorIs(suite.T(), err, store.ErrClosed)
	assert.ErrorIs(suite.T(), suite.store.Set(context.Background(), "users/u1", 1), store.ErrClosed)
	assert.Equal(suite.T(), int32(1), calls.Load())
}

func (suite *TestSuiteStandard) TestSnapshotValuesAreJSON() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "notas_fiscais/n1", map[string]any{"amount": json.Number("1234.56")}))

	sub, snapshots := suite.collect("notas_fiscais", "")
	defer sub.Close()

	snap := suite.waitFor(snapshots, 1)
	assert.JSONEq(suite.T(), `{"amount":1234.56}`, string(snap.Children[0].Value))
}
