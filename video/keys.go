package video

import "github.com/ushitora-anqou/doomvid/constant"

// TranslateASCII maps a host key code in the ASCII range to the engine's
// key code. Upper-case letters fold to lower case. Codes the engine cannot
// store in its key-down table are rejected.
func TranslateASCII(code int) (int, bool) {
	if code >= ' ' && code <= '~' {
		if code >= 'A' && code <= 'Z' {
			code = code - 'A' + 'a'
		}
		return code, true
	}
	if code < 0 || code >= constant.NUM_KEYS {
		return 0, false
	}
	return code, true
}
