package contract_test

import (
	"os"
	"path/filepath"

	"astralnexus/internal/contract"
	"astralnexus/internal/txerr"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Binding", func() {
	var addresses map[contract.Name]common.Address

	BeforeEach(func() {
		addresses = map[contract.Name]common.Address{
			contract.Token:     common.HexToAddress("0xA2C7CaEf4aA9a3da0eaEd89C70Efff1b8818A156"),
			contract.Items:     common.HexToAddress("0xd9BfD73FE6B7481fF056Bf31239c2c4F019c0542"),
			contract.Character: common.HexToAddress("0x3E2F5568494fF67de705fA6BAaB2D8262AB3c7EE"),
			contract.Exchange:  common.HexToAddress("0xA6B0321Cc05672FF44F4E907A54465c0DEf74E77"),
		}
	})

	Describe("LoadSet", func() {
		It("should load all four contracts", func() {
			set, err := contract.LoadSet(contractsDir, addresses)
			Expect(err).NotTo(HaveOccurred())

			for name, address := range addresses {
				b, ok := set.Get(name)
				Expect(ok).To(BeTrue())
				Expect(b.Name).To(Equal(name))
				Expect(b.Address).To(Equal(address))
			}
			Expect(set.Character.Require("createCharacter", "getCharacter")).To(Succeed())
		})

		It("should fail when a definition file is missing", func() {
			dir := GinkgoT().TempDir()
			_, err := contract.LoadSet(dir, addresses)
			Expect(err).To(MatchError(ContainSubstring("read token definition")))
		})

		It("should fail when an address is missing", func() {
			delete(addresses, contract.Exchange)
			_, err := contract.LoadSet(contractsDir, addresses)
			Expect(err).To(MatchError(ContainSubstring("no address configured for exchange")))
		})
	})

	Describe("ParseBinding", func() {
		It("should reject a document without an abi field", func() {
			_, err := contract.ParseBinding(contract.Token, []byte(`{"contractName":"AstralNexusToken"}`), common.Address{})
			Expect(err).To(MatchError(ContainSubstring("no abi field")))
		})

		It("should reject malformed json", func() {
			path := filepath.Join(GinkgoT().TempDir(), "broken.json")
			Expect(os.WriteFile(path, []byte(`{"abi": [`), 0o600)).To(Succeed())

			_, err := contract.LoadBinding(contract.Token, path, common.Address{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Require", func() {
		It("should name every missing method", func() {
			b, err := contract.LoadBinding(contract.Exchange, filepath.Join(contractsDir, contract.DefaultFiles[contract.Exchange]), common.Address{})
			Expect(err).NotTo(HaveOccurred())

			err = b.Require("rateGameToEdu", "swap", "withdraw")
			Expect(txerr.KindOf(err)).To(Equal(txerr.KindEncoding))
			Expect(err.Error()).To(ContainSubstring("exchange.swap"))
			Expect(err.Error()).To(ContainSubstring("exchange.withdraw"))
		})
	})
})
