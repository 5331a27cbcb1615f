package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/store"
	"github.com/harentsoaR/patient-monitor-api/internal/utils"
)

// Handler carries the process-scoped dependencies every route needs. It
// holds no per-request state.
type Handler struct {
	Store     store.Store
	Passwords utils.PasswordChecker
	Tokens    *utils.TokenIssuer
}

// NewHandler wires the store and credential handling into a Handler. A nil
// passwords checker defaults to plain-text comparison; a nil or disabled
// token issuer means login returns no token.
func NewHandler(s store.Store, passwords utils.PasswordChecker, tokens *utils.TokenIssuer) *Handler {
	if passwords == nil {
		passwords = utils.PlainPasswords{}
	}
	return &Handler{
		Store:     s,
		Passwords: passwords,
		Tokens:    tokens,
	}
}

// bindJSON decodes the request body into dst. An empty body leaves dst at
// its zero value so field checks report what is missing.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// bindJSONStrict decodes like bindJSON and also returns the first body key,
// in body order, that dst does not declare ("" when there is none).
func bindJSONStrict(c *gin.Context, dst any) (string, error) {
	body, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return "", err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	scratch := reflect.New(reflect.TypeOf(dst).Elem()).Interface()
	if err := dec.Decode(scratch); err != nil {
		if key, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return strings.Trim(key, `"`), nil
		}
	}
	return "", nil
}

// fail records err for the ErrorHandler middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
