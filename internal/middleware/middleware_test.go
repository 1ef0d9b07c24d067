package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/roommates/internal/auth"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/pkg/api"
)

const (
	whoamiProcedure = "/test.v1.TestService/Whoami"
	pingProcedure   = "/test.v1.TestService/Ping"
)

func whoami(ctx context.Context, _ *connect.Request[api.GetCurrentPersonRequest]) (*connect.Response[api.GetCurrentPersonResponse], error) {
	return connect.NewResponse(&api.GetCurrentPersonResponse{
		Person: &api.Person{ID: GetPersonID(ctx), Username: GetUsername(ctx)},
	}), nil
}

func setupTestServer(t *testing.T, jwtManager *auth.JWTManager) (*connect.Client[api.GetCurrentPersonRequest, api.GetCurrentPersonResponse], *connect.Client[api.GetCurrentPersonRequest, api.GetCurrentPersonResponse], *metrics.Metrics) {
	t.Helper()

	m := metrics.New()
	opts := []connect.HandlerOption{
		connect.WithCodec(api.Codec{}),
		connect.WithInterceptors(MetricsInterceptor(m), RequireAuth(jwtManager, pingProcedure), LoggingInterceptor()),
	}
	mux := http.NewServeMux()
	mux.Handle(whoamiProcedure, connect.NewUnaryHandler(whoamiProcedure, whoami, opts...))
	mux.Handle(pingProcedure, connect.NewUnaryHandler(pingProcedure, whoami, opts...))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	codec := connect.WithCodec(api.Codec{})
	return connect.NewClient[api.GetCurrentPersonRequest, api.GetCurrentPersonResponse](http.DefaultClient, server.URL+whoamiProcedure, codec),
		connect.NewClient[api.GetCurrentPersonRequest, api.GetCurrentPersonResponse](http.DefaultClient, server.URL+pingProcedure, codec),
		m
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	whoamiClient, pingClient, _ := setupTestServer(t, jwtManager)
	ctx := context.Background()

	token, err := jwtManager.Generate(&models.Person{ID: 7, Username: "alice"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		req := connect.NewRequest(&api.GetCurrentPersonRequest{})
		req.Header().Set("Authorization", "Bearer "+token)
		resp, err := whoamiClient.CallUnary(ctx, req)
		if err != nil {
			t.Fatalf("CallUnary failed: %v", err)
		}
		if resp.Msg.Person.ID != 7 || resp.Msg.Person.Username != "alice" {
			t.Errorf("person = %+v", resp.Msg.Person)
		}
		if _, err := uuid.Parse(resp.Header().Get(RequestIDHeader)); err != nil {
			t.Errorf("response request id %q is not a UUID", resp.Header().Get(RequestIDHeader))
		}
	})

	for _, tc := range []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"bad token", "Bearer nope"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := connect.NewRequest(&api.GetCurrentPersonRequest{})
			if tc.header != "" {
				req.Header().Set("Authorization", tc.header)
			}
			_, err := whoamiClient.CallUnary(ctx, req)
			if connect.CodeOf(err) != connect.CodeUnauthenticated {
				t.Errorf("code = %v, want unauthenticated (err %v)", connect.CodeOf(err), err)
			}
		})
	}

	t.Run("public procedure", func(t *testing.T) {
		resp, err := pingClient.CallUnary(ctx, connect.NewRequest(&api.GetCurrentPersonRequest{}))
		if err != nil {
			t.Fatalf("CallUnary failed: %v", err)
		}
		if resp.Msg.Person.ID != 0 {
			t.Errorf("public call saw person %d", resp.Msg.Person.ID)
		}
	})
}

func TestLoggingInterceptorKeepsClientRequestID(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	_, pingClient, _ := setupTestServer(t, jwtManager)

	id := uuid.NewString()
	req := connect.NewRequest(&api.GetCurrentPersonRequest{})
	req.Header().Set(RequestIDHeader, id)
	resp, err := pingClient.CallUnary(context.Background(), req)
	if err != nil {
		t.Fatalf("CallUnary failed: %v", err)
	}
	if got := resp.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	whoamiClient, _, m := setupTestServer(t, jwtManager)

	_, err := whoamiClient.CallUnary(context.Background(), connect.NewRequest(&api.GetCurrentPersonRequest{}))
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %v", err)
	}

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() != "roommates_rpc_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["procedure"] == whoamiProcedure && labels["code"] == "unauthenticated" {
				found = metric.GetHistogram().GetSampleCount() == 1
			}
		}
	}
	if !found {
		t.Error("expected one unauthenticated observation for the procedure")
	}
}
