package services

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionBusy       = errors.New("submission already in progress")
	ErrFormInvalid       = errors.New("form is not valid")
	ErrWrongFlow         = errors.New("operation is not available for this flow")
	ErrWrongStep         = errors.New("operation is not available at this step")
	ErrPhoneLocked       = errors.New("phone number is not editable after verification")
	ErrPhoneInvalid      = errors.New("enter a valid 10-digit mobile number")
	ErrMemberIndex       = errors.New("member index out of range")
	ErrPartySizeRange    = errors.New("number of people must be between 1 and 10")
	ErrTermsNotAccepted  = errors.New("terms must be accepted before submitting")
	ErrPlacesUnavailable = errors.New("place lookup is not available")
)
