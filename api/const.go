package api

import "errors"

// ErrorInvalidArgument operation cannot proceed because a required
// argument, or the receiving index itself, is absent or unusable.
var ErrorInvalidArgument = errors.New("invalidArgument")

// ErrorInvalidKeyType index cannot be created for an unsupported
// key kind.
var ErrorInvalidKeyType = errors.New("invalidKeyType")

// ErrorAllocation operation cannot succeed because memory for a new
// node could not be obtained. Index is left untouched.
var ErrorAllocation = errors.New("allocationFailure")

// ErrorDuplicateKey operation cannot succeed because the same key is
// already indexed.
var ErrorDuplicateKey = errors.New("duplicateKey")

// ErrorKeyMissing operation cannot succeed because specifed key is missing
// in the storage instance.
var ErrorKeyMissing = errors.New("keyMissing")
