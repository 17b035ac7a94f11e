package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
	"github.com/merolaashraf15-source/MED/internal/app/model"
)

const (
	MsgCustomerNameTooShort = "Name must be at least 2 characters"
	MsgPhoneTooShort        = "Phone number must be at least 10 digits"
	MsgPhoneInvalid         = "Please enter a valid phone number"
	MsgMedicineTooShort     = "Medicine details must be at least 3 characters"
	MsgStatusInvalid        = "Status must be one of: pending, processing, completed, cancelled"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// CreateOrderRequest checks a creation body. All three fields are required.
func CreateOrderRequest(request model.CreateOrderRequest) error {
	var messages []string

	if utf8.RuneCountInString(request.CustomerName) < 2 {
		messages = append(messages, MsgCustomerNameTooShort)
	}
	if utf8.RuneCountInString(request.Phone) < 10 {
		messages = append(messages, MsgPhoneTooShort)
	} else if !phonePattern.MatchString(request.Phone) {
		messages = append(messages, MsgPhoneInvalid)
	}
	if utf8.RuneCountInString(request.Medicine) < 3 {
		messages = append(messages, MsgMedicineTooShort)
	}

	return joinMessages(messages)
}

// UpdateOrderRequest checks a partial update body. Every field is optional;
// present fields obey the same constraints as on creation.
func UpdateOrderRequest(request model.UpdateOrderRequest) error {
	var messages []string

	if request.CustomerName != nil && utf8.RuneCountInString(*request.CustomerName) < 2 {
		messages = append(messages, MsgCustomerNameTooShort)
	}
	if request.Phone != nil {
		if utf8.RuneCountInString(*request.Phone) < 10 {
			messages = append(messages, MsgPhoneTooShort)
		} else if !phonePattern.MatchString(*request.Phone) {
			messages = append(messages, MsgPhoneInvalid)
		}
	}
	if request.Medicine != nil && utf8.RuneCountInString(*request.Medicine) < 3 {
		messages = append(messages, MsgMedicineTooShort)
	}
	if request.Status != nil && !entity.OrderStatus(*request.Status).Valid() {
		messages = append(messages, MsgStatusInvalid)
	}

	return joinMessages(messages)
}

func joinMessages(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return errors.New(strings.Join(messages, "; "))
}
