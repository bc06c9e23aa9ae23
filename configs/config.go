package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"ashok-storefront/internal/pkg/validation"

	"github.com/joho/godotenv"
)

// GetEnv reads Config from the environment, after loading a .env file if
// one exists. Unset variables take their envDefault.
func GetEnv() (config *Config, er error) {
	err := godotenv.Load()
	if err != nil {
		_ = godotenv.Load("../../.env")
	}

	config = &Config{}
	v := reflect.ValueOf(config).Elem()
	t := v.Type()

	for i := range make([]struct{}, v.NumField()) {
		field := t.Field(i)
		envTag := field.Tag.Get("env")

		if envTag != "" {
			value, exists := os.LookupEnv(envTag)
			if !exists {
				value, exists = field.Tag.Lookup("envDefault")
			}
			if !exists {
				er = fmt.Errorf("environment variable %s not set", envTag)
				return nil, er
			}

			switch field.Type.Kind() {
			case reflect.String:
				v.Field(i).SetString(value)
			case reflect.Int:
				intValue, err := strconv.Atoi(value)
				if err != nil {
					er = fmt.Errorf("invalid value for %s: %v", envTag, err)
					return nil, er
				}
				v.Field(i).SetInt(int64(intValue))
			case reflect.Bool:
				boolValue, err := strconv.ParseBool(value)
				if err != nil {
					er = fmt.Errorf("invalid boolean value for %s: %v", envTag, err)
					return nil, er
				}
				v.Field(i).SetBool(boolValue)
			default:
				return nil, fmt.Errorf("unsupported type %s for %s", field.Type.Kind(), envTag)
			}
		}
	}

	if err := validation.Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}
