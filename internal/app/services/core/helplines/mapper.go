package helplines

import (
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

func mapContactMethodPayloadToModel(payload *requests.ContactMethodPayload) *models.ContactMethod {
	if payload == nil {
		return nil
	}

	method := &models.ContactMethod{
		Value:       payload.Value,
		Instruction: payload.Instruction,
	}
	for _, window := range payload.Availability {
		method.Availability = append(method.Availability, models.AvailabilityWindow{
			DayType:  window.DayType,
			OpensAt:  window.OpensAt,
			ClosesAt: window.ClosesAt,
		})
	}
	return method
}

func mapHelplinePayloadToModel(request *requests.HelplinePayload) *models.Helpline {
	return &models.Helpline{
		Name:        request.Name,
		Description: request.Description,
		Contact: models.Contact{
			Voice:   mapContactMethodPayloadToModel(request.Contact.Voice),
			Text:    mapContactMethodPayloadToModel(request.Contact.Text),
			Email:   mapContactMethodPayloadToModel(request.Contact.Email),
			Webchat: mapContactMethodPayloadToModel(request.Contact.Webchat),
		},
	}
}

func mapContactMethodToResponse(method *models.ContactMethod) *responses.ContactMethod {
	if method == nil {
		return nil
	}

	response := &responses.ContactMethod{
		Value:       method.Value,
		Instruction: method.Instruction,
	}
	for _, window := range method.Availability {
		response.Availability = append(response.Availability, responses.AvailabilityWindow{
			DayType:  window.DayType,
			OpensAt:  window.OpensAt,
			ClosesAt: window.ClosesAt,
		})
	}
	return response
}

func mapHelplineToResponse(helpline *models.Helpline) *responses.Helpline {
	return &responses.Helpline{
		HelplineID:  helpline.ID,
		Name:        helpline.Name,
		Description: helpline.Description,
		Contact: responses.Contact{
			Voice:   mapContactMethodToResponse(helpline.Contact.Voice),
			Text:    mapContactMethodToResponse(helpline.Contact.Text),
			Email:   mapContactMethodToResponse(helpline.Contact.Email),
			Webchat: mapContactMethodToResponse(helpline.Contact.Webchat),
		},
	}
}
