package model

import "errors"

var ErrorInvalidCredentials = errors.New("invalid email or password")
var ErrorOperatorNotFound = errors.New("operator not found")
var ErrorUnknownObject = errors.New("unknown webhook object")
var ErrorUnknownSector = errors.New("unknown sector")
