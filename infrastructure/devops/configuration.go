package devops

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"axiapac.com/lms/utils"
	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type DBEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// GetDSN builds a mysql DSN for dbname. Hosts without a port get 3306. An empty dbname
// gives a pool DSN without a schema.
func (db DBEntry) GetDSN(dbname string) string {
	host := db.Host
	if !strings.Contains(host, ":") {
		host = host + ":3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", db.Username, db.Password, host, dbname)
}

var (
	once    sync.Once
	dbList  []DBEntry
	loadErr error
)

// LoadDBConfig reads the "databases" SSM parameter once per process.
func LoadDBConfig(ctx context.Context) ([]DBEntry, error) {
	once.Do(func() {
		paramName := "databases"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			loadErr = fmt.Errorf("parameter %s is empty", paramName)
			return
		}

		dbList, loadErr = ParseDBEntries([]byte(*out.Parameter.Value))
	})

	return dbList, loadErr
}

func ParseDBEntries(data []byte) ([]DBEntry, error) {
	var parsed []DBEntry
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return parsed, nil
}

// FindEntry returns the entry called name, ignoring case.
func FindEntry(entries []DBEntry, name string) (DBEntry, bool) {
	entry := utils.Find(entries, func(db DBEntry) bool {
		return strings.EqualFold(db.Name, name)
	})
	if entry == nil {
		return DBEntry{}, false
	}
	return *entry, true
}

// ResolveDSN returns dsn unchanged when set. Otherwise it looks up the entry called name
// in SSM and builds a DSN for schema from it. An empty schema gives a pool DSN.
func ResolveDSN(ctx context.Context, dsn, name, schema string) (string, error) {
	if dsn != "" {
		return dsn, nil
	}
	entries, err := LoadDBConfig(ctx)
	if err != nil {
		return "", err
	}
	entry, ok := FindEntry(entries, name)
	if !ok {
		return "", fmt.Errorf("no database entry %q", name)
	}
	return entry.GetDSN(schema), nil
}
