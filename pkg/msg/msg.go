package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu       sync.RWMutex
	messages = map[string]string{}
)

// Load reads a YAML message catalogue and adds its entries, overriding existing keys.
func Load(data []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	parsed := make(map[string]string)
	parseMessageMap("", v.AllSettings(), parsed)

	mu.Lock()
	defer mu.Unlock()
	for key, value := range parsed {
		messages[key] = value
	}
	return nil
}

// LoadFile reads the YAML message catalogue at path.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fail to read messages file %s: %w", path, err)
	}
	return Load(data)
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}, ... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	msg, exists := messages[key]
	mu.RUnlock()

	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	if len(args) == 0 {
		return msg
	}

	// one pass over the template, so filled-in values are never substituted again
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", argToString(arg))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to string using strconv for better performance
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
