package templates

import (
	"fmt"
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typedParams(valPrefix, typePrefix string, count int) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		sb.WriteString(valPrefix)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" ")
		sb.WriteString(typePrefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func joinedFormat(format, sep string, count int) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		sb.WriteString(fmt.Sprintf(format, i))
		if i < count {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}
