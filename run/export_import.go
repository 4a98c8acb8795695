package run

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/internal/config"
	"github.com/xhd2015/studentlib/models"
)

const exportHelp = `
export <json_file>

Export the whole library to a JSON file.
`

const importHelp = `
import <json_file>

Replace the library with the contents of a JSON file written by export.
Plan progress is recomputed from the imported tasks.
`

const configHelp = `
config - Show or update saved settings

Options:
  --storage <type>             default storage backend: memory, file, sqlite or server
  --server-addr <addr>         default server address
  --server-token <token>       default server token
  -h,--help                    show this help message

Without options the config file path and its current values are printed.
`

const exportVersion = 1

type ExportData struct {
	Version int             `json:"version"`
	Library *models.Library `json:"library"`
}

func handleExport(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", exportHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("export requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	exportData := ExportData{
		Version: exportVersion,
		Library: manager.Library(),
	}
	b, err := json.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(jsonFile, b, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	lib := exportData.Library
	fmt.Printf("Exported %d resources, %d threads, %d plans to %s\n", len(lib.Resources), len(lib.RecentThreads)+len(lib.PopularThreads), len(lib.Plans), jsonFile)
	return nil
}

func readExport(jsonFile string) (*models.Library, error) {
	b, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var importData ExportData
	if err := json.Unmarshal(b, &importData); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if importData.Version != exportVersion {
		return nil, fmt.Errorf("unsupported export version: %d", importData.Version)
	}
	if importData.Library == nil {
		return nil, fmt.Errorf("%s contains no library", jsonFile)
	}
	lib := importData.Library
	lib.Plans = transform.RecomputePlans(lib.Plans)
	return lib, nil
}

func handleImport(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", importHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("import requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	lib, err := readExport(jsonFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	manager, err := CreateLibraryManager(ctx, storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	defer manager.LibraryService.Close()

	if err := manager.Replace(ctx, lib); err != nil {
		return err
	}
	fmt.Printf("Imported %d resources, %d threads, %d plans from %s\n", len(lib.Resources), len(lib.RecentThreads)+len(lib.PopularThreads), len(lib.Plans), jsonFile)
	return nil
}

func handleConfig(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", configHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	configPath, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	conf, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if conf == nil {
		conf = &models.Config{}
	}

	if storageType == "" && serverAddr == "" && serverToken == "" {
		fmt.Println(configPath)
		return outputJSON(os.Stdout, conf)
	}

	if storageType != "" {
		storageType = strings.ToLower(storageType)
		if !slices.Contains(storage.StorageTypes, storageType) {
			return fmt.Errorf("unsupported storage type: %s, available: %s", storageType, strings.Join(storage.StorageTypes, ", "))
		}
		conf.StorageType = storageType
	}
	if serverAddr != "" {
		conf.ServerAddr = serverAddr
	}
	if serverToken != "" {
		conf.ServerToken = serverToken
	}
	if err := data.SaveConfig(conf); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", configPath)
	return nil
}
