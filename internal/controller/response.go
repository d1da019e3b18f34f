package controller

import (
	"errors"

	"github.com/project/lending/internal/entity"
)

const (
	codeOK           = 0
	codeBadRequest   = 400
	codeUnauthorized = 401
	codeForbidden    = 403
	codeNotFound     = 404
	codeServerError  = 500
)

var codeMsgMap = map[int]string{
	codeOK:           "OK",
	codeBadRequest:   "Bad Request",
	codeUnauthorized: "Unauthorized",
	codeForbidden:    "Forbidden",
	codeNotFound:     "Not Found",
	codeServerError:  "Internal Server Error",
}

type response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func newResponse(code int, msg string, data any) response {
	if data == nil {
		data = struct{}{}
	}

	return response{Code: code, Msg: msg, Data: data}
}

func ok(data any) response {
	return newResponse(codeOK, codeMsgMap[codeOK], data)
}

func fail(code int, customMsg string) response {
	msg := codeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}

	return newResponse(code, msg, struct{}{})
}

func failFromError(err error) response {
	switch {
	case errors.Is(err, entity.ErrBookNotFound), errors.Is(err, entity.ErrUserNotFound):
		return fail(codeNotFound, err.Error())
	case errors.Is(err, entity.ErrInvalidYear),
		errors.Is(err, entity.ErrInvalidCard),
		errors.Is(err, entity.ErrUserExists):
		return fail(codeBadRequest, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		return fail(codeUnauthorized, err.Error())
	default:
		return fail(codeServerError, "")
	}
}
