package cli

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/digitrot/internal/rotation"
	"github.com/temirov/digitrot/internal/utils"
	flagutils "github.com/temirov/digitrot/internal/utils/flags"
)

const (
	applicationNameConstant                 = "digitrot"
	applicationUseConstant                  = applicationNameConstant + " [value]"
	applicationShortDescriptionConstant     = "Move the leading digit of an integer to the end"
	applicationLongDescriptionConstant      = "digitrot reads a positive integer from the first argument or standard input, moves its leading decimal digit to the end and prints the result. The default formula mode exchanges the leading and trailing digits (105 becomes 501); cyclic mode shifts every digit up by one place (105 becomes 51)."
	applicationExampleConstant              = "echo 4567 | digitrot --mode cyclic\ndigitrot 105"
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	modeFlagNameConstant                    = "mode"
	modeFlagUsageConstant                   = "Override the configured rotation mode."
	newlineFlagNameConstant                 = "newline"
	newlineFlagShorthandConstant            = "n"
	newlineFlagUsageConstant                = "Terminate the result with a newline."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	rotationConfigurationKeyConstant        = "rotation"
	environmentPrefixConstant               = "DIGITROT"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	defaultConfigurationSearchPathConstant  = "."
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rotationModeErrorTemplateConstant       = "unable to resolve rotation mode: %w"
	rotationServiceErrorTemplateConstant    = "unable to create rotation service: %w"
	rotationExecutedMessageConstant         = "digitrot executed"
	logFieldInputSourceConstant             = "input_source"
	logFieldModeConstant                    = "mode"
	logFieldBytesWrittenConstant            = "bytes_written"
	inputSourceArgumentConstant             = "argument"
	inputSourceStandardInputConstant        = "stdin"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common   ApplicationCommonConfiguration `mapstructure:"common"`
	Rotation rotation.Configuration         `mapstructure:"rotation"`
}

// ApplicationCommonConfiguration stores logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand              *cobra.Command
	configurationLoader      *utils.ConfigurationLoader
	logger                   *zap.Logger
	configuration            ApplicationConfiguration
	configurationMetadata    utils.LoadedConfiguration
	configurationFilePath    string
	logLevelFlagValue        string
	logFormatFlagValue       string
	modeFlagValue            string
	trailingNewlineFlagValue bool
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userSearchPath := utils.UserConfigurationSearchPath(applicationNameConstant); len(userSearchPath) > 0 {
		searchPaths = append(searchPaths, userSearchPath)
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		searchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationUseConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Example:       applicationExampleConstant,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	flagutils.AddChoiceFlag(persistentFlags, &application.logLevelFlagValue, logLevelFlagNameConstant, string(utils.LogLevelWarn), utils.LogLevelNames(), logLevelFlagUsageConstant)
	flagutils.AddChoiceFlag(persistentFlags, &application.logFormatFlagValue, logFormatFlagNameConstant, string(utils.LogFormatStructured), utils.LogFormatNames(), logFormatFlagUsageConstant)
	flagutils.AddChoiceFlag(cobraCommand.Flags(), &application.modeFlagValue, modeFlagNameConstant, string(rotation.DefaultMode), rotation.ModeNames(), modeFlagUsageConstant)
	flagutils.AddToggleFlag(cobraCommand.Flags(), &application.trailingNewlineFlagValue, newlineFlagNameConstant, newlineFlagShorthandConstant, false, newlineFlagUsageConstant)

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the root command with the process arguments and ensures logger flushing.
func (application *Application) Execute() error {
	return application.ExecuteArguments(os.Args[1:])
}

// ExecuteArguments runs the root command with the provided arguments and ensures logger flushing.
func (application *Application) ExecuteArguments(arguments []string) error {
	normalizedArguments := flagutils.NormalizeToggleArguments(arguments)
	if normalizedArguments == nil {
		normalizedArguments = []string{}
	}
	application.rootCommand.SetArgs(normalizedArguments)

	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}
	for configurationKey, configurationValue := range rotation.DefaultConfigurationValues(rotationConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration

	if flagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}
	if flagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}
	if flagChanged(command, modeFlagNameConstant) {
		application.configuration.Rotation.Mode = application.modeFlagValue
	}
	if flagChanged(command, newlineFlagNameConstant) {
		application.configuration.Rotation.TrailingNewline = application.trailingNewlineFlagValue
	}

	loggerFactory := utils.NewLoggerFactoryWithOutput(command.ErrOrStderr())
	logger, loggerCreationError := loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	mode, modeError := application.configuration.Rotation.ResolveMode()
	if modeError != nil {
		return fmt.Errorf(rotationModeErrorTemplateConstant, modeError)
	}

	service, serviceError := rotation.NewService(rotation.ServiceDependencies{Logger: application.logger})
	if serviceError != nil {
		return fmt.Errorf(rotationServiceErrorTemplateConstant, serviceError)
	}

	output := utils.NewFlushingWriter(command.OutOrStdout())
	options := rotation.Options{
		Input:           command.InOrStdin(),
		Output:          output,
		Mode:            mode,
		TrailingNewline: application.configuration.Rotation.TrailingNewline,
	}

	inputSource := inputSourceStandardInputConstant
	var runError error
	if len(arguments) > 0 {
		inputSource = inputSourceArgumentConstant
		inputValue, parseError := rotation.ParseValue(arguments[0])
		if parseError != nil {
			return parseError
		}
		_, runError = service.RunValue(command.Context(), inputValue, options)
	} else {
		_, runError = service.Run(command.Context(), options)
	}
	if runError != nil {
		return runError
	}

	application.logger.Info(
		rotationExecutedMessageConstant,
		zap.String(logFieldInputSourceConstant, inputSource),
		zap.Stringer(logFieldModeConstant, mode),
		zap.Int(logFieldBytesWrittenConstant, output.BytesWritten()),
	)

	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func flagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}
	if changedFlag := command.Flags().Lookup(flagName); changedFlag != nil && changedFlag.Changed {
		return true
	}
	if rootCommand := command.Root(); rootCommand != nil {
		return rootCommand.PersistentFlags().Changed(flagName)
	}
	return false
}
