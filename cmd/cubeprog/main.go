// Command cubeprog is a small NVM/HWID flashing tool: it operates directly
// on a cube's flash image file, independent of a running Hardware instance,
// for provisioning cubes or inspecting flash images offline.
//
// Adapted from chr2png/main.go's urfave/cli.v2 App{Flags, Action} shape.
package main

import (
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strconv"

	"github.com/cubecore/cubehw/flashmem"
	"github.com/cubecore/cubehw/hardware"
	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "cubeprog",
		Usage:   "Read or program a cube's NVM flash image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "path to the NVM flash image file",
			},
			&cli.StringFlag{
				Name:    "hwid",
				Aliases: []string{"w"},
				Usage:   "HWID (hex) to program into the image's first 8 bytes",
				Value:   "0000000000000000",
			},
			&cli.BoolFlag{
				Name:    "read",
				Aliases: []string{"r"},
				Usage:   "read and print the image's current HWID instead of programming one",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "size in bytes to create a new image at, if it doesn't already exist",
				Value: hardware.DefaultNVMSize,
			},
		},
		Action: func(c *cli.Context) error {
			imagePath := c.String("image")
			if imagePath == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("", 86)
			}

			bank, err := loadOrCreate(imagePath, c.Int("size"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("can't load image: %v", err), 1)
			}

			if c.Bool("read") {
				fmt.Printf("%016X\n", readHWID(bank))
				return nil
			}

			hwid, err := strconv.ParseUint(c.String("hwid"), 16, 64)
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid --hwid %q: %v", c.String("hwid"), err), 1)
			}
			writeHWID(bank, hwid)
			if err := save(imagePath, bank); err != nil {
				return cli.Exit(fmt.Sprintf("can't save image: %v", err), 1)
			}
			fmt.Printf("programmed HWID %016X into %s\n", hwid, imagePath)
			return nil
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadOrCreate(path string, size int) (*flashmem.Bank, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return flashmem.New(size)
	}
	if err != nil {
		return nil, err
	}
	bank, err := flashmem.New(len(data))
	if err != nil {
		return nil, err
	}
	for i, b := range data {
		bank.Write(i, b)
	}
	return bank, nil
}

func save(path string, bank *flashmem.Bank) error {
	data := make([]byte, bank.Len())
	for i := range data {
		data[i] = bank.Read(i)
	}
	return ioutil.WriteFile(path, data, 0644)
}

func readHWID(bank *flashmem.Bank) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = bank.Read(i)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// writeHWID programs through Bank.Program, so it can only clear bits
// relative to whatever the image already holds. Start from an erased image
// to set an arbitrary HWID.
func writeHWID(bank *flashmem.Bank, hwid uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], hwid)
	for i, b := range buf {
		bank.Program(i, b)
	}
}
