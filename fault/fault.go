// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ExistsError("already initialised")
	CertificateFileExists = ExistsError("certificate file already exists")
	ChecksumMismatch      = ProcessError("checksum mismatch")
	FingerprintMismatch   = InvalidError("certificate fingerprint mismatch")
	IncompatibleVersion   = ProcessError("incompatible database version")
	InsufficientBalance   = ProcessError("insufficient balance")
	InvalidAddress        = InvalidError("invalid address")
	InvalidAmount         = InvalidError("invalid amount")
	InvalidConfiguration  = InvalidError("configuration did not return a table")
	InvalidCount          = InvalidError("invalid count")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidIpAddress      = InvalidError("invalid IP address")
	InvalidItem           = InvalidError("invalid item")
	InvalidKeyLength      = InvalidError("invalid key length")
	InvalidKeyType        = InvalidError("invalid key type")
	InvalidSignature      = InvalidError("invalid signature")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	KeyFileExists         = ExistsError("key file already exists")
	KeyNotReversible      = ProcessError("key is not reversible")
	LengthMismatch        = LengthError("length mismatch")
	MissingParameters     = InvalidError("missing parameters")
	NotAuthorised         = ProcessError("caller is not authorised")
	NotInitialised        = NotFoundError("not initialised")
	NotMinter             = ProcessError("caller is not the minter")
	Overflow              = ProcessError("balance overflow")
	RateLimiting          = ProcessError("rate limiting")
	ReadOnly              = ProcessError("database is read only")
	RequestExpired        = InvalidError("request expired")
	RequestReplayed       = ExistsError("request already processed")
	SelfApproval          = InvalidError("cannot approve self as operator")
	TransactionInUse      = ProcessError("transaction already in use")
	TransactionNotInUse   = ProcessError("transaction not in use")
	TruncatedRecord       = RecordError("truncated record")
	UnknownPool           = NotFoundError("unknown pool")
	UnrecognisedKey       = InvalidError("unrecognised key")
	WrongEncoding         = InvalidError("wrong key encoding")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
