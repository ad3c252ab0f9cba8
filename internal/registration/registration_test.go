package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/state"
)

type fakeRegisterAPI struct {
	registerFn func(input api.RegisterCleaningBusinessInput) (models.User, error)
}

func (f fakeRegisterAPI) RegisterCleaningBusiness(ctx context.Context, input api.RegisterCleaningBusinessInput) (models.User, error) {
	if f.registerFn == nil {
		return models.User{UserID: "u1"}, nil
	}
	return f.registerFn(input)
}

func filledForm() *state.RegistrationForm {
	form := state.NewRegistrationForm(4)
	form.Update(map[string]string{
		"business_name": "Sparkle Co",
		"full_name":     "Ada Brooks",
		"email":         "ada@sparkle.co",
		"phone":         "5551234567",
		"password":      "hunter2",
		"team_size":     "12",
	})
	return form
}

func TestSubmitSuccess(t *testing.T) {
	form := filledForm()
	var got api.RegisterCleaningBusinessInput
	flow := NewFlow(fakeRegisterAPI{registerFn: func(input api.RegisterCleaningBusinessInput) (models.User, error) {
		got = input
		return models.User{UserID: "u1", Role: models.RoleCleaningBusiness}, nil
	}}, form)

	user, err := flow.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if user.UserID != "u1" {
		t.Fatalf("user id=%s", user.UserID)
	}
	if got.BusinessName != "Sparkle Co" || got.TeamSize != 12 {
		t.Fatalf("input mapped wrong: %+v", got)
	}
	if status, _ := form.Status(); status != state.StatusSuccess {
		t.Fatalf("status=%s, want success", status)
	}
}

func TestSubmitFailureKeepsFieldsAndAllowsRetry(t *testing.T) {
	form := filledForm()
	failing := true
	flow := NewFlow(fakeRegisterAPI{registerFn: func(input api.RegisterCleaningBusinessInput) (models.User, error) {
		if failing {
			return models.User{}, errors.New("email already registered")
		}
		return models.User{UserID: "u1"}, nil
	}}, form)

	if _, err := flow.Submit(context.Background()); err == nil {
		t.Fatalf("expected failure")
	}
	status, msg := form.Status()
	if status != state.StatusError || msg != "email already registered" {
		t.Fatalf("status=%s msg=%q", status, msg)
	}
	if form.Field("business_name") != "Sparkle Co" {
		t.Fatalf("failure cleared form fields")
	}

	failing = false
	if _, err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if status, _ := form.Status(); status != state.StatusSuccess {
		t.Fatalf("status=%s after retry, want success", status)
	}
}

func TestSubmitRefusedAfterSuccess(t *testing.T) {
	form := filledForm()
	flow := NewFlow(fakeRegisterAPI{}, form)
	if _, err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := flow.Submit(context.Background()); !errors.Is(err, api.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
