package data

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/mocks"
)

func newDoer(t *testing.T) *mocks.MockDoer {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockDoer(ctrl)
}

func jsonResp(body string) *gateway.Response {
	return &gateway.Response{Status: http.StatusOK, Body: []byte(body)}
}

func TestContainerRepo_List_AcceptsEnvelopeAndArray(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"envelope": `{"data":[{"id":1,"boardId":"B1","location":"Lobby","status":"ACTIVE"}]}`,
		"array":    `[{"id":1,"boardId":"B1","location":"Lobby","status":"ACTIVE"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			gw := newDoer(t)
			gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodGet, Path: "/containers"}).Return(jsonResp(body), nil)

			got, err := NewContainerRepo(gw).List(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, model.Container{ID: 1, BoardID: "B1", Location: "Lobby", Status: model.ContainerActive}, got[0])
		})
	}
}

func TestContainerRepo_List_EmptyBody(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(jsonResp(""), nil)

	got, err := NewContainerRepo(gw).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContainerRepo_List_WrongShape(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(jsonResp(`{"data":{"id":1}}`), nil)

	_, err := NewContainerRepo(gw).List(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestContainerRepo_Create(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req gateway.Request) (*gateway.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/containers", req.Path)
		assert.Equal(t, model.CreateContainerRequest{BoardID: "B9", Location: "Gate 2", Description: "north"}, req.JSON)
		return jsonResp(`{"id":9,"boardId":"B9","location":"Gate 2","status":"ACTIVE"}`), nil
	})

	c, err := NewContainerRepo(gw).Create(context.Background(), model.CreateContainerRequest{BoardID: " B9 ", Location: "Gate 2 ", Description: "north"})
	require.NoError(t, err)
	assert.EqualValues(t, 9, c.ID)
}

func TestContainerRepo_Create_ValidatesBeforeCalling(t *testing.T) {
	t.Parallel()

	_, err := NewContainerRepo(newDoer(t)).Create(context.Background(), model.CreateContainerRequest{Location: "x"})
	require.Error(t, err)
}

func TestContainerRepo_SetStatus(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{
		Method: http.MethodPut,
		Path:   "/containers/4/status",
		Route:  "/containers/{id}/status",
		JSON:   map[string]model.ContainerStatus{"status": model.ContainerMaintenance},
	}).Return(jsonResp(`{}`), nil)

	require.NoError(t, NewContainerRepo(gw).SetStatus(context.Background(), 4, model.ContainerMaintenance))
	require.ErrorIs(t, NewContainerRepo(gw).SetStatus(context.Background(), 4, "BROKEN"), ErrInvalidStatus)
	require.ErrorIs(t, NewContainerRepo(gw).SetStatus(context.Background(), 0, model.ContainerActive), ErrInvalidID)
}

func TestStats_Decode(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodGet, Path: "/containers/stats"}).
		Return(jsonResp(`{"totalContainers":5,"activeContainers":3}`), nil)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodGet, Path: "/lockers/stats"}).
		Return(jsonResp(`{"data":{"totalLockers":40,"availableLockers":30,"occupiedLockers":8}}`), nil)

	cs, err := NewContainerRepo(gw).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ContainerStats{TotalContainers: 5, ActiveContainers: 3}, *cs)

	ls, err := NewLockerRepo(gw).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.LockerStats{TotalLockers: 40, AvailableLockers: 30, OccupiedLockers: 8}, *ls)
}

func TestLockerRepo_Open(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	req := model.OpenLockerRequest{LockerNumber: "12", BoardID: "B1"}
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodPost, Path: "/lockers/open", JSON: req}).
		Return(jsonResp(`{"message":"Opened"}`), nil)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodPost, Path: "/lockers/open", JSON: req}).
		Return(jsonResp(`OK`), nil)

	msg, err := NewLockerRepo(gw).Open(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Opened", msg)

	msg, err = NewLockerRepo(gw).Open(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestLockerRepo_Open_PropagatesGatewayError(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, &gateway.HTTPError{Status: http.StatusConflict, Body: []byte(`{"message":"busy"}`)})

	_, err := NewLockerRepo(gw).Open(context.Background(), model.OpenLockerRequest{LockerNumber: "1", BoardID: "B"})
	assert.Equal(t, gateway.OutcomeHTTPError, gateway.Classify(err))
	assert.JSONEq(t, `{"message":"busy"}`, string(gateway.BodyOf(err)))
}

func TestDeliveryRepo_List_Filters(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req gateway.Request) (*gateway.Response, error) {
		assert.Equal(t, "/deliveries", req.Path)
		assert.Equal(t, "B1", req.Query.Get("boardId"))
		assert.Equal(t, "WAITING", req.Query.Get("status"))
		return jsonResp(`[{"id":1,"boardId":"B1","status":"WAITING","createdAt":"2024-01-01T00:00:00Z"}]`), nil
	})
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req gateway.Request) (*gateway.Response, error) {
		assert.Empty(t, req.Query)
		return jsonResp(`[]`), nil
	})

	repo := NewDeliveryRepo(gw)
	got, err := repo.List(context.Background(), model.DeliveryFilter{BoardID: "B1", Status: model.DeliveryWaiting})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.List(context.Background(), model.DeliveryFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeliveryRepo_SetStatus(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{
		Method: http.MethodPut,
		Path:   "/deliveries/7/status",
		Route:  "/deliveries/{id}/status",
		JSON:   map[string]model.DeliveryStatus{"status": model.DeliveryPickedUp},
	}).Return(jsonResp(``), nil)

	require.NoError(t, NewDeliveryRepo(gw).SetStatus(context.Background(), 7, model.DeliveryPickedUp))
}

func TestBannerRepo(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodPut, Path: "/banner/3", Route: "/banner/{id}", JSON: map[string]bool{"status": false}}).
		Return(jsonResp(`{}`), nil)
	gw.EXPECT().Do(gomock.Any(), gateway.Request{Method: http.MethodDelete, Path: "/banner/3", Route: "/banner/{id}"}).
		Return(jsonResp(``), nil)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req gateway.Request) (*gateway.Response, error) {
		require.NotNil(t, req.Multipart)
		assert.Equal(t, "image", req.Multipart.Fields["type"])
		require.Len(t, req.Multipart.Files, 1)
		assert.Equal(t, "file", req.Multipart.Files[0].Field)
		assert.Equal(t, "promo.png", req.Multipart.Files[0].FileName)
		return jsonResp(`{"data":{"id":11,"type":"image","url":"https://cdn/x.png","status":true}}`), nil
	})

	repo := NewBannerRepo(gw)
	require.NoError(t, repo.SetStatus(context.Background(), 3, false))
	require.NoError(t, repo.Delete(context.Background(), 3))

	b, err := repo.Create(context.Background(), model.BannerUpload{Type: model.BannerImage, FileName: "promo.png", Content: strings.NewReader("x")})
	require.NoError(t, err)
	assert.EqualValues(t, 11, b.ID)
	assert.True(t, b.Status)

	_, err = repo.Create(context.Background(), model.BannerUpload{Type: model.BannerImage})
	require.ErrorIs(t, err, ErrMissingUpload)
}

func TestBackend_WrapsErrors(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	boom := errors.New("boom")
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, boom).Times(4)

	b := NewBackend(gw)
	_, err := b.Lockers.List(context.Background())
	require.ErrorIs(t, err, boom)
	_, err = b.Banners.List(context.Background())
	require.ErrorIs(t, err, boom)
	_, err = b.Deliveries.List(context.Background(), model.DeliveryFilter{})
	require.ErrorIs(t, err, boom)
	_, err = b.Containers.Stats(context.Background())
	require.ErrorIs(t, err, boom)
}
