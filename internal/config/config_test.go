package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestGetStringSliceFromString(t *testing.T) {
	v := viper.New()
	v.Set("source", " uniswap-v2 , sushiswap ,, uniswap-v3 ")

	got := getStringSlice(v, "source")
	want := []string{"uniswap-v2", "sushiswap", "uniswap-v3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("slice mismatch: %v != %v", got, want)
	}
}

func TestGetStringSliceFromStringSlice(t *testing.T) {
	v := viper.New()
	v.Set("path", []string{" 0xaaa ", "", "0xbbb"})

	got := getStringSlice(v, "path")
	want := []string{"0xaaa", "0xbbb"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("slice mismatch: %v != %v", got, want)
	}
}

func TestGetStringSliceFromInterfaceSlice(t *testing.T) {
	v := viper.New()
	v.Set("amount", []interface{}{"100", 200, " 300 ", ""})

	got := getStringSlice(v, "amount")
	want := []string{"100", "200", "300"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("slice mismatch: %v != %v", got, want)
	}
}

func TestGetStringSliceUnset(t *testing.T) {
	v := viper.New()
	if got := getStringSlice(v, "missing"); got != nil {
		t.Fatalf("expected nil for unset key, got %v", got)
	}
}

func TestLoadMergesFlagsAndDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("rpc", "", "")
	flags.StringSlice("source", nil, "")
	if err := flags.Parse([]string{"--rpc", "http://localhost:8545", "--source", "uniswap-v2,sushiswap"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RPCURL != "http://localhost:8545" {
		t.Fatalf("rpc mismatch: %s", cfg.RPCURL)
	}
	if want := []string{"uniswap-v2", "sushiswap"}; !reflect.DeepEqual(cfg.Sources, want) {
		t.Fatalf("sources mismatch: %v != %v", cfg.Sources, want)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("default max-retries mismatch: %d", cfg.MaxRetries)
	}
	if cfg.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("default retry-backoff mismatch: %s", cfg.RetryBackoff)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log-level mismatch: %s", cfg.LogLevel)
	}
}
