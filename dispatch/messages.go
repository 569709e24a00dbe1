package dispatch

import (
	"fmt"

	"github.com/jonwraymond/formdocs/catalog"
)

// ValidMessage accompanies a successful validate_config answer.
const ValidMessage = "Конфигурация валидна / Configuration is valid"

var missingArgument = map[string]string{
	catalog.ArgControlName: "Имя контрола не указано / Control name not specified",
	catalog.ArgSpecName:    "Имя Spec не указано / Spec name not specified",
	catalog.ArgConfig:      "Конфигурация не указана / Configuration not specified",
}

var illegalValue = map[string]func(v any) string{
	catalog.ArgControlName: func(v any) string {
		return fmt.Sprintf("Контрол '%v' не найден. Используйте %s для просмотра доступных контролов."+
			" / Control '%v' not found. Use %s to see available controls.",
			v, catalog.OpListControls, v, catalog.OpListControls)
	},
	catalog.ArgSpecName: func(v any) string {
		return fmt.Sprintf("Spec '%v' не найден. Используйте %s для просмотра доступных Spec значений."+
			" / Spec '%v' not found. Use %s to see available Spec values.",
			v, catalog.OpListSpecValues, v, catalog.OpListSpecValues)
	},
}

func missingArgumentMessage(arg string) string {
	if msg, ok := missingArgument[arg]; ok {
		return msg
	}
	return fmt.Sprintf("Аргумент %s не указан / %s not specified", arg, arg)
}

func illegalValueMessage(op catalog.Operation, arg string, v any) string {
	if msg, ok := illegalValue[arg]; ok {
		return msg(v)
	}
	return fmt.Sprintf("Недопустимое значение '%v' для %s / Illegal value '%v' for %s of %s", v, arg, v, arg, op.Name)
}

func missingControlDocMessage(kind catalog.ControlKind) string {
	return fmt.Sprintf("Документация для контрола '%s' не найдена / Documentation for control '%s' not found", kind, kind)
}

func missingSpecDocMessage(kind catalog.SpecKind) string {
	return fmt.Sprintf("Документация для Spec '%s' не найдена / Documentation for Spec '%s' not found", kind, kind)
}
