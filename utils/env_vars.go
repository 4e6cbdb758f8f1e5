package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	~string | ~int | ~bool | ~float64 | time.Duration
}

// GetEnv reads an environment variable, then the loaded config file, and falls back
// to the default value. It panics if the value cannot be parsed to T.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	value, ok := lookupConfigValue(envVarName)
	if !ok {
		return defaultValue
	}
	parsed, err := parseEnvValue[T](value)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return parsed
}

// GetRequiredEnv is GetEnv without a default: it panics if the value is missing.
func GetRequiredEnv[T envVarType](envVarName string) T {
	value, ok := lookupConfigValue(envVarName)
	if !ok {
		panic(fmt.Sprintf("%s environment variable is required", envVarName))
	}
	parsed, err := parseEnvValue[T](value)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return parsed
}

func lookupConfigValue(name string) (string, bool) {
	if envValue, ok := os.LookupEnv(name); ok && envValue != "" {
		return envValue, true
	}
	return configFileValue(name)
}

func parseEnvValue[T envVarType](value string) (T, error) {
	var result T
	switch p := any(&result).(type) {
	case *string:
		*p = value
	case *int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return result, fmt.Errorf("'%s' is not an integer", value)
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return result, fmt.Errorf("'%s' cannot be converted to bool", value)
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return result, fmt.Errorf("'%s' is not a float", value)
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(value)
		if err != nil {
			return result, fmt.Errorf("'%s' is not a duration", value)
		}
		*p = v
	default:
		return result, fmt.Errorf("unsupported type %T", result)
	}
	return result, nil
}
