package lnd

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate runs over the presence shapes below, never over the records
// themselves: the gateway emits empty strings for unset fields (a keysend
// invoice has payment_request ""), so only an absent or null key is missing.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// present decodes to a non-nil pointer for any JSON value except null.
type present = *json.RawMessage

type addInvoiceFields struct {
	RHash          present `json:"r_hash" validate:"required"`
	PaymentRequest present `json:"payment_request" validate:"required"`
	PaymentAddr    present `json:"payment_addr" validate:"required"`
}

type invoiceFields struct {
	RHash          present `json:"r_hash" validate:"required"`
	PaymentRequest present `json:"payment_request" validate:"required"`
}

type sendFields struct {
	PaymentHash present `json:"payment_hash" validate:"required"`
}

type paymentFields struct {
	PaymentHash present `json:"payment_hash" validate:"required"`
}

type listPaymentsFields struct {
	Payments []paymentFields `json:"payments" validate:"dive"`
}

// requiredFields returns the presence shape checked for a reply type, or nil.
func requiredFields(out interface{}) interface{} {
	switch out.(type) {
	case *AddInvoiceResponse:
		return &addInvoiceFields{}
	case *Invoice:
		return &invoiceFields{}
	case *SendResponse:
		return &sendFields{}
	case *ListPaymentsResponse:
		return &listPaymentsFields{}
	}
	return nil
}

func decode(op string, body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Body: body, Err: err}
	}
	shape := requiredFields(out)
	if shape == nil {
		return nil
	}
	if err := json.Unmarshal(body, shape); err != nil {
		return &DecodeError{Op: op, Body: body, Err: err}
	}
	if err := validate.Struct(shape); err != nil {
		return &DecodeError{Op: op, Body: body, Err: missingFields(err)}
	}
	return nil
}

// missingFields names the absent keys by their JSON path, e.g.
// "payments[1].payment_hash".
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		names = append(names, ns)
	}
	return fmt.Errorf("missing required field(s): %s", strings.Join(names, ", "))
}
