// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package diagnostic

// Diagnostic identifiers.
const (
	IDInvalidBoundAttributeNullOrWhitespace          = "RZ3001"
	IDInvalidBoundAttributeName                      = "RZ3002"
	IDInvalidBoundAttributeNameStartsWith            = "RZ3003"
	IDInvalidBoundAttributePrefix                    = "RZ3004"
	IDInvalidBoundAttributePrefixStartsWith          = "RZ3005"
	IDInvalidAttributePrefixNotNull                  = "RZ3006"
	IDInvalidAttributePrefixNull                     = "RZ3007"
	IDInvalidAttributeNameNullOrEmpty                = "RZ3008"
	IDInvalidTargetedTagNameNullOrWhitespace         = "RZ3009"
	IDInvalidTargetedTagName                         = "RZ3010"
	IDInvalidTargetedParentTagNameNullOrWhitespace   = "RZ3011"
	IDInvalidTargetedParentTagName                   = "RZ3012"
	IDInvalidTargetedAttributeNameNullOrWhitespace   = "RZ3013"
	IDInvalidTargetedAttributeName                   = "RZ3014"
	IDInvalidRestrictedChildNullOrWhitespace         = "RZ3015"
	IDInvalidRestrictedChild                         = "RZ3016"
	IDCouldNotFindMatchingEndBrace                   = "RZ3017"
	IDInvalidRequiredAttributeCharacter              = "RZ3018"
	IDPartialRequiredAttributeOperator               = "RZ3019"
	IDInvalidRequiredAttributeOperator               = "RZ3020"
	IDInvalidRequiredAttributeMismatchedQuotes       = "RZ3021"
	IDInvalidBoundAttributeParameterNullOrWhitespace = "RZ3022"
	IDInvalidBoundAttributeParameterName             = "RZ3023"
)

type descriptor struct {
	name     string
	category Category
	format   string
}

var descriptors = map[string]descriptor{
	IDInvalidBoundAttributeNullOrWhitespace: {
		"InvalidBoundAttributeNullOrWhitespace", CategoryMalformedName,
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with a null or whitespace name.",
	},
	IDInvalidBoundAttributeName: {
		"InvalidBoundAttributeName", CategoryMalformedName,
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with name '%s' because the name contains a '%s' character.",
	},
	IDInvalidBoundAttributeNameStartsWith: {
		"InvalidBoundAttributeNameStartsWith", CategoryReservedPrefix,
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with name '%s' because the name starts with 'data-'.",
	},
	IDInvalidBoundAttributePrefix: {
		"InvalidBoundAttributePrefix", CategoryMalformedName,
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with prefix '%s' because the prefix contains a '%s' character.",
	},
	IDInvalidBoundAttributePrefixStartsWith: {
		"InvalidBoundAttributePrefixStartsWith", CategoryReservedPrefix,
		"Invalid tag helper bound property '%s.%s'. Tag helpers cannot bind to HTML attributes with prefix '%s' because the prefix starts with 'data-'.",
	},
	IDInvalidAttributePrefixNotNull: {
		"InvalidAttributePrefixNotNull", CategoryBindingShape,
		"Invalid tag helper bound property '%s.%s'. 'DictionaryAttributePrefix' must be null unless the property type is a string-keyed dictionary.",
	},
	IDInvalidAttributePrefixNull: {
		"InvalidAttributePrefixNull", CategoryBindingShape,
		"Invalid tag helper bound property '%s.%s'. 'DictionaryAttributePrefix' must be set when a dictionary property without a public setter declares an attribute name.",
	},
	IDInvalidAttributeNameNullOrEmpty: {
		"InvalidAttributeNameNullOrEmpty", CategoryBindingShape,
		"Invalid tag helper bound property '%s.%s'. An explicit attribute name requires a public setter.",
	},
	IDInvalidTargetedTagNameNullOrWhitespace: {
		"InvalidTargetedTagNameNullOrWhitespace", CategoryMalformedName,
		"Targeted tag name cannot be null or whitespace.",
	},
	IDInvalidTargetedTagName: {
		"InvalidTargetedTagName", CategoryMalformedName,
		"Tag helpers cannot target tag name '%s' because it contains a '%s' character.",
	},
	IDInvalidTargetedParentTagNameNullOrWhitespace: {
		"InvalidTargetedParentTagNameNullOrWhitespace", CategoryMalformedName,
		"Targeted parent tag name cannot be null or whitespace.",
	},
	IDInvalidTargetedParentTagName: {
		"InvalidTargetedParentTagName", CategoryMalformedName,
		"Tag helpers cannot target parent tag name '%s' because it contains a '%s' character.",
	},
	IDInvalidTargetedAttributeNameNullOrWhitespace: {
		"InvalidTargetedAttributeNameNullOrWhitespace", CategoryMalformedName,
		"Targeted attribute name cannot be null or whitespace.",
	},
	IDInvalidTargetedAttributeName: {
		"InvalidTargetedAttributeName", CategoryMalformedName,
		"Tag helpers cannot target attribute name '%s' because it contains a '%s' character.",
	},
	IDInvalidRestrictedChildNullOrWhitespace: {
		"InvalidRestrictedChildNullOrWhitespace", CategoryMalformedName,
		"Tag helper '%s' restricts child elements with a null or whitespace name.",
	},
	IDInvalidRestrictedChild: {
		"InvalidRestrictedChild", CategoryMalformedName,
		"Tag helper '%s' cannot restrict child element '%s' because it contains a '%s' character.",
	},
	IDCouldNotFindMatchingEndBrace: {
		"CouldNotFindMatchingEndBrace", CategorySelectorSyntax,
		"Could not find matching ']' for required attribute '%s'.",
	},
	IDInvalidRequiredAttributeCharacter: {
		"InvalidRequiredAttributeCharacter", CategorySelectorSyntax,
		"Invalid character '%s' in required attribute '%s'. Separate required attributes with commas.",
	},
	IDPartialRequiredAttributeOperator: {
		"PartialRequiredAttributeOperator", CategorySelectorSyntax,
		"Required attribute operator '%s' in '%s' must be followed by '='.",
	},
	IDInvalidRequiredAttributeOperator: {
		"InvalidRequiredAttributeOperator", CategorySelectorSyntax,
		"Invalid required attribute operator '%s' in '%s'.",
	},
	IDInvalidRequiredAttributeMismatchedQuotes: {
		"InvalidRequiredAttributeMismatchedQuotes", CategorySelectorSyntax,
		"Mismatched quote %s in required attribute '%s'.",
	},
	IDInvalidBoundAttributeParameterNullOrWhitespace: {
		"InvalidBoundAttributeParameterNullOrWhitespace", CategoryMalformedName,
		"Invalid bound attribute parameter on '%s'. Parameter names cannot be null or whitespace.",
	},
	IDInvalidBoundAttributeParameterName: {
		"InvalidBoundAttributeParameterName", CategoryMalformedName,
		"Invalid bound attribute parameter '%s' on '%s' because the name contains a '%s' character.",
	},
}

func newError(id string, args ...string) Diagnostic {
	return Diagnostic{
		ID:       id,
		Severity: SeverityError,
		Category: descriptors[id].category,
		Args:     args,
	}
}

func InvalidBoundAttributeNullOrWhitespace(typeName, property string) Diagnostic {
	return newError(IDInvalidBoundAttributeNullOrWhitespace, typeName, property)
}

func InvalidBoundAttributeName(typeName, property, name string, ch rune) Diagnostic {
	return newError(IDInvalidBoundAttributeName, typeName, property, name, string(ch))
}

func InvalidBoundAttributeNameStartsWith(typeName, property, name string) Diagnostic {
	return newError(IDInvalidBoundAttributeNameStartsWith, typeName, property, name)
}

func InvalidBoundAttributePrefix(typeName, property, prefix string, ch rune) Diagnostic {
	return newError(IDInvalidBoundAttributePrefix, typeName, property, prefix, string(ch))
}

func InvalidBoundAttributePrefixStartsWith(typeName, property, prefix string) Diagnostic {
	return newError(IDInvalidBoundAttributePrefixStartsWith, typeName, property, prefix)
}

func InvalidAttributePrefixNotNull(typeName, property string) Diagnostic {
	return newError(IDInvalidAttributePrefixNotNull, typeName, property)
}

func InvalidAttributePrefixNull(typeName, property string) Diagnostic {
	return newError(IDInvalidAttributePrefixNull, typeName, property)
}

func InvalidAttributeNameNullOrEmpty(typeName, property string) Diagnostic {
	return newError(IDInvalidAttributeNameNullOrEmpty, typeName, property)
}

func InvalidTargetedTagNameNullOrWhitespace() Diagnostic {
	return newError(IDInvalidTargetedTagNameNullOrWhitespace)
}

func InvalidTargetedTagName(tagName string, ch rune) Diagnostic {
	return newError(IDInvalidTargetedTagName, tagName, string(ch))
}

func InvalidTargetedParentTagNameNullOrWhitespace() Diagnostic {
	return newError(IDInvalidTargetedParentTagNameNullOrWhitespace)
}

func InvalidTargetedParentTagName(parentTag string, ch rune) Diagnostic {
	return newError(IDInvalidTargetedParentTagName, parentTag, string(ch))
}

func InvalidTargetedAttributeNameNullOrWhitespace() Diagnostic {
	return newError(IDInvalidTargetedAttributeNameNullOrWhitespace)
}

func InvalidTargetedAttributeName(name string, ch rune) Diagnostic {
	return newError(IDInvalidTargetedAttributeName, name, string(ch))
}

func InvalidRestrictedChildNullOrWhitespace(typeName string) Diagnostic {
	return newError(IDInvalidRestrictedChildNullOrWhitespace, typeName)
}

func InvalidRestrictedChild(typeName, child string, ch rune) Diagnostic {
	return newError(IDInvalidRestrictedChild, typeName, child, string(ch))
}

func CouldNotFindMatchingEndBrace(text string) Diagnostic {
	return newError(IDCouldNotFindMatchingEndBrace, text)
}

func InvalidRequiredAttributeCharacter(ch rune, text string) Diagnostic {
	return newError(IDInvalidRequiredAttributeCharacter, string(ch), text)
}

func PartialRequiredAttributeOperator(op rune, text string) Diagnostic {
	return newError(IDPartialRequiredAttributeOperator, string(op), text)
}

func InvalidRequiredAttributeOperator(op rune, text string) Diagnostic {
	return newError(IDInvalidRequiredAttributeOperator, string(op), text)
}

func InvalidRequiredAttributeMismatchedQuotes(quote rune, text string) Diagnostic {
	return newError(IDInvalidRequiredAttributeMismatchedQuotes, string(quote), text)
}

func InvalidBoundAttributeParameterNullOrWhitespace(attribute string) Diagnostic {
	return newError(IDInvalidBoundAttributeParameterNullOrWhitespace, attribute)
}

func InvalidBoundAttributeParameterName(parameter, attribute string, ch rune) Diagnostic {
	return newError(IDInvalidBoundAttributeParameterName, parameter, attribute, string(ch))
}
