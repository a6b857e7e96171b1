package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"praxis/internal/modules/auth/domain"
	"praxis/internal/modules/auth/dto"
	"praxis/internal/modules/auth/service"
	"praxis/internal/modules/auth/usecase"
)

type fakeGateway struct {
	user       domain.User
	auth       bool
	checkErr   error
	loginErr   error
	logoutErr  error
	loginCalls int
}

func (f *fakeGateway) Check(context.Context) (domain.User, bool, error) {
	return f.user, f.auth, f.checkErr
}

func (f *fakeGateway) Login(context.Context, string, string) (domain.User, error) {
	f.loginCalls++
	return f.user, f.loginErr
}

func (f *fakeGateway) Logout(context.Context) error {
	return f.logoutErr
}

func TestCheckStatusAuthenticated(t *testing.T) {
	t.Parallel()
	state := service.NewSessionState()
	uc := usecase.NewInteractor(state, &fakeGateway{user: domain.User{Username: "ali"}, auth: true}, zap.NewNop())

	out := uc.CheckStatus(context.Background())
	if !out.Authenticated || out.Username != "ali" {
		t.Fatalf("unexpected status: %+v", out)
	}
	snap := uc.Current()
	if !snap.Authenticated || snap.Loading {
		t.Fatalf("state not resolved: %+v", snap)
	}
}

func TestCheckStatusFailureResolvesUnauthenticated(t *testing.T) {
	t.Parallel()
	state := service.NewSessionState()
	uc := usecase.NewInteractor(state, &fakeGateway{checkErr: errors.New("boom")}, zap.NewNop())

	out := uc.CheckStatus(context.Background())
	if out.Authenticated {
		t.Fatal("expected unauthenticated on gateway failure")
	}
	snap := uc.Current()
	if snap.Authenticated || snap.Loading {
		t.Fatalf("expected resolved unauthenticated state, got %+v", snap)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{}
	uc := usecase.NewInteractor(service.NewSessionState(), gw, zap.NewNop())

	out := uc.Login(context.Background(), dto.LoginInput{Username: "ali"})
	if out.Success {
		t.Fatal("expected login to fail without password")
	}
	if out.Message != "Both username and password are required" {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if gw.loginCalls != 0 {
		t.Fatalf("expected zero gateway calls, got %d", gw.loginCalls)
	}
}

func TestLoginSuccessSetsState(t *testing.T) {
	t.Parallel()
	state := service.NewSessionState()
	uc := usecase.NewInteractor(state, &fakeGateway{user: domain.User{Username: "ali"}}, zap.NewNop())

	out := uc.Login(context.Background(), dto.LoginInput{Username: "ali", Password: "pw"})
	if !out.Success || out.Username != "ali" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if snap := uc.Current(); !snap.Authenticated {
		t.Fatalf("expected authenticated state, got %+v", snap)
	}
}

func TestLoginFailureLeavesUnauthenticated(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSessionState(), &fakeGateway{loginErr: errors.New("nope")}, zap.NewNop())

	out := uc.Login(context.Background(), dto.LoginInput{Username: "ali", Password: "pw"})
	if out.Success {
		t.Fatal("expected failed login")
	}
	if out.Message != "Login failed" {
		t.Fatalf("unexpected fallback message %q", out.Message)
	}
}

func TestLogoutClearsStateEvenWhenGatewayFails(t *testing.T) {
	t.Parallel()
	state := service.NewSessionState()
	state.SetAuthenticated(domain.User{Username: "ali"})
	uc := usecase.NewInteractor(state, &fakeGateway{logoutErr: errors.New("network down")}, zap.NewNop())

	uc.Logout(context.Background())
	if snap := uc.Current(); snap.Authenticated {
		t.Fatalf("expected cleared state after logout, got %+v", snap)
	}
}
