package env

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgstrings "github.com/orbit-suite/orbit/pkg/strings"
)

type supportedTypes interface {
	bool | int | float64 | string | time.Time | time.Duration | uuid.UUID
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T supportedTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return value, nil
}

func ParseOptional[T supportedTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return nil, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return &value, nil
}

func ParseOptionalList[T supportedTypes](key, delimiter string) ([]T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}
	return ParseList[T](key, delimiter)
}

func ParseList[T supportedTypes](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("env %s not found", key)
	}

	items := strings.Split(str, delimiter)
	result := make([]T, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		value, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list value: %w", key, err)
		}
		result = append(result, value)
	}

	return result, nil
}
