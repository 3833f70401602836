package service

import (
	"localizebackend/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verr := apierror.FromValidationError(err); verr != nil {
		return verr
	}
	log.Errorf("failed to validate %T: %v", req, err)
	return apierror.InternalServerError
}

func parseID(rawId string) (uuid.UUID, apierror.ErrorResponse) {
	id, err := uuid.Parse(rawId)
	if err != nil {
		return uuid.Nil, apierror.InvalidIDError
	}
	return id, nil
}
