package registration

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/state"
)

// RegisterAPI is the slice of the backend client the flow needs.
type RegisterAPI interface {
	RegisterCleaningBusiness(ctx context.Context, input api.RegisterCleaningBusinessInput) (models.User, error)
}

// Flow drives the final step of the cleaning-business registration
// wizard: move the form to loading, call the backend, land on success or
// error. A failed attempt leaves every entered field in place for the
// resubmission.
type Flow struct {
	api  RegisterAPI
	form *state.RegistrationForm
}

func NewFlow(registerAPI RegisterAPI, form *state.RegistrationForm) *Flow {
	return &Flow{api: registerAPI, form: form}
}

func (f *Flow) Submit(ctx context.Context) (models.User, error) {
	if !f.form.Begin() {
		status, _ := f.form.Status()
		return models.User{}, &api.Error{Status: http.StatusConflict, Code: "registration_" + status, Message: "registration already " + status}
	}

	fields := f.form.Fields()
	teamSize, _ := strconv.Atoi(fields["team_size"])
	user, err := f.api.RegisterCleaningBusiness(ctx, api.RegisterCleaningBusinessInput{
		BusinessName: fields["business_name"],
		FullName:     fields["full_name"],
		Email:        fields["email"],
		Phone:        fields["phone"],
		Password:     fields["password"],
		City:         fields["city"],
		TeamSize:     teamSize,
	})
	if err != nil {
		f.form.Fail(err.Error())
		return models.User{}, err
	}
	f.form.Succeed()
	return user, nil
}
