package plugin

import (
	"slices"
	"strconv"
)

//go:generate enumer -type=ErrorCode -trimprefix=ErrorCode -transform=snake-upper -json -text -output=errorcode_enumer.go

// ErrorCode is the result of a command, a plugin entry point or a hook.
// Zero means success; every failure is negative.
type ErrorCode int

// Error codes shared by archium and its plugins.
const (
	ErrorCodeSuccess        ErrorCode = 0
	ErrorCodeInvalidInput   ErrorCode = -1
	ErrorCodeInvalidCommand ErrorCode = -2
	ErrorCodeInvalidArg     ErrorCode = -3
	ErrorCodeBufferOverflow ErrorCode = -4

	ErrorCodeSystemCall       ErrorCode = -10
	ErrorCodeFileNotFound     ErrorCode = -11
	ErrorCodeFileAccess       ErrorCode = -12
	ErrorCodeMemoryAllocation ErrorCode = -13
	ErrorCodeProcessFailed    ErrorCode = -14

	ErrorCodePackageManager       ErrorCode = -20
	ErrorCodePackageNotFound      ErrorCode = -21
	ErrorCodePackageInstallFailed ErrorCode = -22
	ErrorCodePackageRemoveFailed  ErrorCode = -23
	ErrorCodePackageUpdateFailed  ErrorCode = -24
	ErrorCodePackageDependency    ErrorCode = -25

	ErrorCodeNetwork           ErrorCode = -30
	ErrorCodeDownloadFailed    ErrorCode = -31
	ErrorCodeConnectionTimeout ErrorCode = -32

	ErrorCodePermission        ErrorCode = -40
	ErrorCodePrivilegeRequired ErrorCode = -41
	ErrorCodeAccessDenied      ErrorCode = -42

	ErrorCodeConfig        ErrorCode = -50
	ErrorCodeConfigInvalid ErrorCode = -51
	ErrorCodeConfigMissing ErrorCode = -52

	ErrorCodePlugin           ErrorCode = -60
	ErrorCodePluginLoadFailed ErrorCode = -61
	ErrorCodePluginInvalid    ErrorCode = -62

	ErrorCodeTimeout ErrorCode = -70
	ErrorCodeUnknown ErrorCode = -99
)

var errorCodeDescriptions = map[ErrorCode]string{
	ErrorCodeSuccess:              "Success",
	ErrorCodeInvalidInput:         "Invalid input provided",
	ErrorCodeInvalidCommand:       "Invalid command",
	ErrorCodeInvalidArg:           "Invalid argument",
	ErrorCodeBufferOverflow:       "Input too long",
	ErrorCodeSystemCall:           "System call failed",
	ErrorCodeFileNotFound:         "File not found",
	ErrorCodeFileAccess:           "File access denied",
	ErrorCodeMemoryAllocation:     "Memory allocation failed",
	ErrorCodeProcessFailed:        "Process execution failed",
	ErrorCodePackageManager:       "Package manager error",
	ErrorCodePackageNotFound:      "Package not found",
	ErrorCodePackageInstallFailed: "Package installation failed",
	ErrorCodePackageRemoveFailed:  "Package removal failed",
	ErrorCodePackageUpdateFailed:  "Package update failed",
	ErrorCodePackageDependency:    "Package dependency error",
	ErrorCodeNetwork:              "Network error",
	ErrorCodeDownloadFailed:       "Download failed",
	ErrorCodeConnectionTimeout:    "Connection timeout",
	ErrorCodePermission:           "Permission denied",
	ErrorCodePrivilegeRequired:    "Root privileges required",
	ErrorCodeAccessDenied:         "Access denied",
	ErrorCodeConfig:               "Configuration error",
	ErrorCodeConfigInvalid:        "Invalid configuration",
	ErrorCodeConfigMissing:        "Configuration missing",
	ErrorCodePlugin:               "Plugin error",
	ErrorCodePluginLoadFailed:     "Plugin load failed",
	ErrorCodePluginInvalid:        "Invalid plugin",
	ErrorCodeTimeout:              "Operation timed out",
	ErrorCodeUnknown:              "Unknown error",
}

// KnownErrorCodes returns every shared error code, from success downwards.
func KnownErrorCodes() []ErrorCode {
	return slices.Clone(ErrorCodeValues())
}

// Description returns a human-readable description of the code.
func (c ErrorCode) Description() string {
	if desc, ok := errorCodeDescriptions[c]; ok {
		return desc
	}

	return "Plugin-defined error " + strconv.Itoa(int(c))
}

// Category groups codes by their tens digit, mirroring the numbering scheme.
func (c ErrorCode) Category() string {
	switch {
	case c == ErrorCodeSuccess:
		return "success"
	case c > -10 && c < 0:
		return "input"
	case c <= -10 && c > -20:
		return "system"
	case c <= -20 && c > -30:
		return "package"
	case c <= -30 && c > -40:
		return "network"
	case c <= -40 && c > -50:
		return "permission"
	case c <= -50 && c > -60:
		return "config"
	case c <= -60 && c > -70:
		return "plugin"
	case c <= -70 && c > -80:
		return "timeout"
	default:
		return "unknown"
	}
}

// IsSuccess reports whether the code is ErrorCodeSuccess.
func (c ErrorCode) IsSuccess() bool {
	return c == ErrorCodeSuccess
}

// Err returns nil for success and a *CodeError otherwise.
func (c ErrorCode) Err() error {
	if c.IsSuccess() {
		return nil
	}

	return &CodeError{Code: c}
}

// CodeError carries a non-success ErrorCode through error-returning APIs.
type CodeError struct {
	Code ErrorCode
}

// Error returns the error message.
func (e *CodeError) Error() string {
	return e.Code.Description() + " (" + e.Code.String() + ")"
}
