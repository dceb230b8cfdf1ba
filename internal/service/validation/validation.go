package validation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// One parse function per request shape. Each is pure: it takes the raw body
// (decoded with json.Decoder.UseNumber so integers stay exact) or raw query
// strings and returns either a fully typed value or a field->message map,
// never partial success.

type FieldErrors map[string]string

const (
	nameMinLen     = 1
	nameMaxLen     = 64
	passwordMinLen = 4
	passwordMaxLen = 128
)

type UserCreate struct {
	Name     string
	Password string // empty when not supplied
}

type Credentials struct {
	Name     string
	Password string
}

type CategoryCreate struct {
	Name    string
	OwnerID *uint
}

type CategoryQuery struct {
	OwnerID *uint
}

type RecordCreate struct {
	UserID     uint
	CategoryID uint
	Datetime   time.Time
	Amount     decimal.Decimal
}

type RecordQuery struct {
	UserID     *uint
	CategoryID *uint
}

// stringField trims surrounding whitespace before any other check.
func stringField(body map[string]interface{}, field string, errs FieldErrors) (string, bool) {
	raw, ok := body[field]
	if !ok {
		errs[field] = field + " is required"
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		errs[field] = field + " must be a string"
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		errs[field] = field + " cannot be empty"
		return "", false
	}
	return s, true
}

// intField accepts only strictly integral JSON numbers: floats, booleans and
// numeric strings are rejected.
func intField(body map[string]interface{}, field string, required bool, errs FieldErrors) (uint, bool) {
	raw, ok := body[field]
	if !ok {
		if required {
			errs[field] = field + " is required"
		}
		return 0, false
	}
	num, ok := raw.(json.Number)
	if !ok {
		errs[field] = field + " must be an integer"
		return 0, false
	}
	v, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		errs[field] = field + " must be an integer"
		return 0, false
	}
	if v < 1 {
		errs[field] = field + " must be greater than or equal to 1"
		return 0, false
	}
	return uint(v), true
}

func nameField(body map[string]interface{}, errs FieldErrors) (string, bool) {
	name, ok := stringField(body, "name", errs)
	if !ok {
		return "", false
	}
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		errs["name"] = "name length must be between 1 and 64"
		return "", false
	}
	return name, true
}

func passwordField(body map[string]interface{}, required bool, errs FieldErrors) (string, bool) {
	if _, ok := body["password"]; !ok && !required {
		return "", true
	}
	password, ok := stringField(body, "password", errs)
	if !ok {
		return "", false
	}
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		errs["password"] = "password length must be between 4 and 128"
		return "", false
	}
	return password, true
}

// ParseID validates a path or body identifier: strictly integral and >= 1.
func ParseID(field string, raw string) (uint, FieldErrors) {
	errs := FieldErrors{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = field + " is required"
		return 0, errs
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs[field] = field + " must be an integer"
		return 0, errs
	}
	if v < 1 {
		errs[field] = field + " must be greater than or equal to 1"
		return 0, errs
	}
	return uint(v), nil
}

func optionalIDParam(field string, raw string, errs FieldErrors) (*uint, bool) {
	if raw == "" {
		return nil, true
	}
	id, fieldErrs := ParseID(field, raw)
	if fieldErrs != nil {
		errs[field] = fieldErrs[field]
		return nil, false
	}
	return &id, true
}

// ParseUserCreate handles POST /user bodies; the password is optional.
func ParseUserCreate(body map[string]interface{}) (UserCreate, FieldErrors) {
	errs := FieldErrors{}
	name, _ := nameField(body, errs)
	password, _ := passwordField(body, false, errs)
	if len(errs) > 0 {
		return UserCreate{}, errs
	}
	return UserCreate{Name: name, Password: password}, nil
}

// ParseCredentials handles /register and /login bodies; both fields required.
func ParseCredentials(body map[string]interface{}) (Credentials, FieldErrors) {
	errs := FieldErrors{}
	name, _ := nameField(body, errs)
	password, _ := passwordField(body, true, errs)
	if len(errs) > 0 {
		return Credentials{}, errs
	}
	return Credentials{Name: name, Password: password}, nil
}

func ParseCategoryCreate(body map[string]interface{}) (CategoryCreate, FieldErrors) {
	errs := FieldErrors{}
	name, _ := nameField(body, errs)
	var ownerID *uint
	if _, present := body["user_id"]; present {
		if id, ok := intField(body, "user_id", false, errs); ok {
			ownerID = &id
		}
	}
	if len(errs) > 0 {
		return CategoryCreate{}, errs
	}
	return CategoryCreate{Name: name, OwnerID: ownerID}, nil
}

func ParseCategoryDelete(body map[string]interface{}) (uint, FieldErrors) {
	errs := FieldErrors{}
	id, ok := intField(body, "id", true, errs)
	if !ok {
		return 0, errs
	}
	return id, nil
}

func ParseCategoryQuery(rawUserID string) (CategoryQuery, FieldErrors) {
	errs := FieldErrors{}
	ownerID, ok := optionalIDParam("user_id", rawUserID, errs)
	if !ok {
		return CategoryQuery{}, errs
	}
	return CategoryQuery{OwnerID: ownerID}, nil
}

func ParseRecordCreate(body map[string]interface{}) (RecordCreate, FieldErrors) {
	errs := FieldErrors{}
	userID, _ := intField(body, "user_id", true, errs)
	categoryID, _ := intField(body, "category_id", true, errs)
	datetime, _ := datetimeField(body, errs)
	amount, _ := amountField(body, errs)
	if len(errs) > 0 {
		return RecordCreate{}, errs
	}
	return RecordCreate{
		UserID:     userID,
		CategoryID: categoryID,
		Datetime:   datetime,
		Amount:     amount,
	}, nil
}

// ParseRecordQuery requires at least one of user_id/category_id.
func ParseRecordQuery(rawUserID, rawCategoryID string) (RecordQuery, FieldErrors) {
	if rawUserID == "" && rawCategoryID == "" {
		return RecordQuery{}, FieldErrors{"query": "provide user_id and/or category_id"}
	}
	errs := FieldErrors{}
	userID, _ := optionalIDParam("user_id", rawUserID, errs)
	categoryID, _ := optionalIDParam("category_id", rawCategoryID, errs)
	if len(errs) > 0 {
		return RecordQuery{}, errs
	}
	return RecordQuery{UserID: userID, CategoryID: categoryID}, nil
}

// datetimeField parses ISO 8601; a zoneless timestamp is taken as UTC.
func datetimeField(body map[string]interface{}, errs FieldErrors) (time.Time, bool) {
	s, ok := stringField(body, "datetime", errs)
	if !ok {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC); err == nil {
		return t, true
	}
	errs["datetime"] = "datetime must be ISO 8601"
	return time.Time{}, false
}

// amountField accepts a decimal string only. Exact decimal parsing avoids
// silent precision loss on money values.
func amountField(body map[string]interface{}, errs FieldErrors) (decimal.Decimal, bool) {
	raw, ok := body["amount"]
	if !ok {
		errs["amount"] = "amount is required"
		return decimal.Decimal{}, false
	}
	s, ok := raw.(string)
	if !ok {
		errs["amount"] = "amount must be a decimal string"
		return decimal.Decimal{}, false
	}
	s = strings.TrimSpace(s)
	dec, err := decimal.NewFromString(s)
	if err != nil {
		errs["amount"] = "amount must be a number"
		return decimal.Decimal{}, false
	}
	if !dec.IsPositive() {
		errs["amount"] = "amount must be > 0"
		return decimal.Decimal{}, false
	}
	return dec, true
}
