package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"ethabi/cache/typename"
	"ethabi/compat/geth"
	"ethabi/config"
	"ethabi/db"
	"ethabi/models"
	"ethabi/paramtype"
	"ethabi/pkg/mysql"
	"ethabi/rpc"
	"ethabi/util/log"
)

var (
	typeNames string
	abiFile   string
	abiURL    string
	contract  string
	persist   bool
	checkGeth bool
)

func init() {
	flag.StringVar(&typeNames, "type", "", "comma separated canonical type names to parse, e.g. \"uint256[3][],(address,bool)\"")
	flag.StringVar(&abiFile, "file", "", "path of an abi json document")
	flag.StringVar(&abiURL, "url", "", "url of an abi json document")
	flag.StringVar(&contract, "contract", "", "contract label used when persisting events")
	flag.BoolVar(&persist, "persist", false, "store event signatures in mysql")
	flag.BoolVar(&checkGeth, "geth", false, "check that every event converts to go-ethereum arguments")
}

func main() {
	flag.Parse()
	config.Load(false)
	log.SetPath(config.GetLogPath())
	log.SetPrefix(config.GetLabel())
	log.Init(config.DebugMode())

	cache, err := typename.New(config.GetCacheSize(), &paramtype.Reader{MaxDepth: config.GetMaxDepth()})
	if err != nil {
		log.Fatal(err)
	}
	models.UseReader(cache)

	if typeNames != "" {
		if !printTypes(cache, strings.Split(typeNames, ",")) {
			os.Exit(1)
		}
	}

	if abiFile == "" && abiURL == "" {
		if typeNames == "" {
			flag.Usage()
		}
		return
	}

	abi, err := loadABI()
	if err != nil {
		log.Fatalf("Failed to load abi: %v", err)
	}

	for _, event := range abi.Events {
		fmt.Printf("%s %s\n", event.Topic(), event.Signature())

		if checkGeth {
			if _, err := geth.ToArguments(event.Inputs); err != nil {
				log.Warnf("Event %s is not supported by go-ethereum: %v", event.Signature(), err)
			}
		}
	}

	for _, function := range abi.Functions {
		fmt.Printf("%s %s\n", function.Selector(), function.Signature())
	}

	if persist {
		persistEvents(abi.Events)
	}
}

func printTypes(r models.TypeReader, names []string) bool {
	ok := true

	for _, name := range names {
		name = strings.TrimSpace(name)
		t, err := r.Read(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			ok = false
			continue
		}

		fmt.Printf("%s => %s\n", name, t)
	}

	return ok
}

func loadABI() (*models.ABI, error) {
	if abiURL != "" {
		return rpc.GetABI(abiURL)
	}

	raw, err := ioutil.ReadFile(abiFile)
	if err != nil {
		return nil, err
	}

	return models.ParseABIDocument(raw)
}

func persistEvents(events []models.Event) {
	if contract == "" {
		log.Fatal("-contract is required with -persist")
	}

	mysql.Init()
	defer mysql.Close()

	if err := db.CreateEventTable(); err != nil {
		log.Fatalf("Failed to create event table: %v", err)
	}

	inserted, err := db.InsertEvents(contract, events)
	if err != nil {
		log.Fatalf("Failed to persist events of %s: %v", contract, err)
	}

	log.Infof("Persisted %d of %d events of %s", inserted, len(events), contract)
}
