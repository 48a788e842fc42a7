package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/simple-bank/internal/config"
	"github.com/carson-networks/simple-bank/internal/service"
)

var errNotConfirmed = errors.New("deletion is irreversible, pass --confirm to proceed")

func newAccountCommand(cfg *config.Config) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Work with accounts in the data file",
	}

	accountCmd.AddCommand(
		newCreateCommand(cfg),
		newDepositCommand(cfg),
		newWithdrawCommand(cfg),
		newShowCommand(cfg),
		newUpdateCommand(cfg),
		newDeleteCommand(cfg),
		newListCommand(cfg),
	)
	return accountCmd
}

// withBank opens the bank for the duration of fn.
func withBank(cmd *cobra.Command, cfg *config.Config, fn func(*service.AccountService) error) error {
	b, err := openBank(cmd, cfg)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b.service.Account)
}

func addCredentialFlags(cmd *cobra.Command, creds *service.Credentials) {
	cmd.Flags().StringVarP(&creds.AccountNumber, "account", "a", "", "account number")
	cmd.Flags().IntVarP(&creds.PIN, "pin", "p", 0, "4-digit PIN")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("pin")
}

func printAccount(cmd *cobra.Command, acc *service.Account) {
	cmd.Printf("Name:           %s\n", acc.Name)
	cmd.Printf("Age:            %d\n", acc.Age)
	cmd.Printf("Email:          %s\n", acc.Email)
	cmd.Printf("PIN:            %d\n", acc.PIN)
	cmd.Printf("Account number: %s\n", acc.AccountNumber)
	cmd.Printf("Balance:        %s\n", acc.Balance.String())
}

func newCreateCommand(cfg *config.Config) *cobra.Command {
	var newAccount service.NewAccount
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				created, err := svc.CreateAccount(cmd.Context(), newAccount)
				if err != nil {
					return fmt.Errorf("cannot create account: %w", err)
				}
				cmd.Println("Account has been created successfully!")
				printAccount(cmd, created)
				cmd.Println("Please note down your account number.")
				return nil
			})
		},
	}
	createCmd.Flags().StringVar(&newAccount.Name, "name", "", "your name")
	createCmd.Flags().IntVar(&newAccount.Age, "age", 0, "your age, 18 or older")
	createCmd.Flags().StringVar(&newAccount.Email, "email", "", "your email")
	createCmd.Flags().IntVarP(&newAccount.PIN, "pin", "p", 0, "4-digit PIN")
	_ = createCmd.MarkFlagRequired("age")
	_ = createCmd.MarkFlagRequired("pin")
	return createCmd
}

type balanceOp func(svc *service.AccountService, cmd *cobra.Command, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error)

func newBalanceCommand(cfg *config.Config, use, short, success string, op balanceOp) *cobra.Command {
	var creds service.Credentials
	var amount string
	balanceCmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				balance, err := op(svc, cmd, creds, parsed)
				if err != nil {
					return fmt.Errorf("%s failed: %w", use, err)
				}
				cmd.Println(success)
				cmd.Printf("New balance: %s\n", balance.StringFixed(2))
				return nil
			})
		},
	}
	addCredentialFlags(balanceCmd, &creds)
	balanceCmd.Flags().StringVar(&amount, "amount", "", "decimal amount")
	_ = balanceCmd.MarkFlagRequired("amount")
	return balanceCmd
}

func newDepositCommand(cfg *config.Config) *cobra.Command {
	return newBalanceCommand(cfg, "deposit", "Deposit money", "Amount deposited successfully!",
		func(svc *service.AccountService, cmd *cobra.Command, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error) {
			return svc.Deposit(cmd.Context(), creds, amount)
		})
}

func newWithdrawCommand(cfg *config.Config) *cobra.Command {
	return newBalanceCommand(cfg, "withdraw", "Withdraw money", "Amount withdrawn successfully!",
		func(svc *service.AccountService, cmd *cobra.Command, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error) {
			return svc.Withdraw(cmd.Context(), creds, amount)
		})
}

func newShowCommand(cfg *config.Config) *cobra.Command {
	var creds service.Credentials
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				found, err := svc.ShowDetails(cmd.Context(), creds)
				if err != nil {
					return err
				}
				printAccount(cmd, found)
				return nil
			})
		},
	}
	addCredentialFlags(showCmd, &creds)
	return showCmd
}

func newUpdateCommand(cfg *config.Config) *cobra.Command {
	var creds service.Credentials
	var newName, newEmail string
	var newPIN int
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update name, email or PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			var update service.DetailsUpdate
			if newName != "" {
				update.Name = &newName
			}
			if newEmail != "" {
				update.Email = &newEmail
			}
			if cmd.Flags().Changed("new-pin") {
				update.PIN = &newPIN
			}
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				updated, err := svc.UpdateDetails(cmd.Context(), creds, update)
				if err != nil {
					return fmt.Errorf("update failed: %w", err)
				}
				cmd.Println("Details updated successfully!")
				printAccount(cmd, updated)
				return nil
			})
		},
	}
	addCredentialFlags(updateCmd, &creds)
	updateCmd.Flags().StringVar(&newName, "new-name", "", "new name")
	updateCmd.Flags().StringVar(&newEmail, "new-email", "", "new email")
	updateCmd.Flags().IntVar(&newPIN, "new-pin", 0, "new 4-digit PIN")
	return updateCmd
}

func newDeleteCommand(cfg *config.Config) *cobra.Command {
	var creds service.Credentials
	var confirm bool
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errNotConfirmed
			}
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				if err := svc.DeleteAccount(cmd.Context(), creds); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
				cmd.Println("Account deleted successfully!")
				return nil
			})
		},
	}
	addCredentialFlags(deleteCmd, &creds)
	deleteCmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the irreversible deletion")
	return deleteCmd
}

func newListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBank(cmd, cfg, func(svc *service.AccountService) error {
				summaries, err := svc.ListAccounts(cmd.Context())
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					cmd.Println("No accounts created yet.")
					return nil
				}
				for _, s := range summaries {
					cmd.Printf("%s\t%s\t%s\n", s.AccountNumber, s.Name, s.Balance.String())
				}
				return nil
			})
		},
	}
}
