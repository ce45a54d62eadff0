//go:build !unix && !windows

package errors

func nativeCodeOf(err error) NativeCode {
	return NativeCode{}
}

func nativeMessage(c NativeCode) string {
	return ""
}

func nativeKind(c NativeCode) ErrorCode {
	return ErrUnknown
}
