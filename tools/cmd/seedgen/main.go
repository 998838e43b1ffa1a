// pix-broker/tools/cmd/seedgen/main.go
//
// Generates seed SQL with dummy accounts and payment links for local runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

func main() {
	n := flag.Int("n", 20, "number of accounts to generate")
	out := flag.String("out", "tools/data/seed.sql", "path output SQL")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	if err := os.MkdirAll("tools/data", 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	gateways := []string{"buckpay", "zeroonepay"}
	for i := 0; i < *n; i++ {
		acct := fmt.Sprintf("ACC_%04d", i+1)
		gw := gateways[rand.Intn(len(gateways))]

		settings := fmt.Sprintf(`{"apiToken": "tok_%06d"}`, rand.Intn(1000000))
		if gw == "zeroonepay" {
			settings = fmt.Sprintf(`{"apiToken": "tok_%06d", "offerHash": "off_%06d", "productHash": "prd_%06d"}`,
				rand.Intn(1000000), rand.Intn(1000000), rand.Intn(1000000))
		}

		fmt.Fprintf(f, "INSERT INTO accounts (id, active_gateway, gateway_settings) VALUES ('%s', '%s', '%s');\n",
			acct, gw, settings)

		links := 1 + rand.Intn(3)
		for j := 0; j < links; j++ {
			fmt.Fprintf(f, "INSERT INTO payment_links (account_id, link_id, plan_value) VALUES ('%s', 'LINK_%04d_%d', %.2f);\n",
				acct, i+1, j+1, 10+rand.Float64()*490)
		}
	}
	log.Printf("generated %s (%d accounts)", *out, *n)
}
